// Package exec handles executing external commands.
package exec

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/lanternhq/lantern/internal/tracker"
)

// DefaultOpenCommand is used when open.command is not configured. It
// delegates to gh, which knows how to find a browser.
const DefaultOpenCommand = "gh issue view {number} --repo {repo} --web"

// OpenDetached runs the open command for an issue in a detached
// process, so the browser outlives lantern.
func OpenDetached(command string, issue *tracker.Issue, repo string) error {
	if strings.TrimSpace(command) == "" {
		command = DefaultOpenCommand
	}

	expanded := expandTemplate(command, issue, repo)

	// Execute via shell
	cmd := exec.Command("sh", "-c", expanded)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	// Start the process but don't wait for it
	return cmd.Start()
}

// expandTemplate expands template variables in the command.
func expandTemplate(command string, issue *tracker.Issue, repo string) string {
	result := command

	// {url} - Issue URL on github.com
	result = strings.ReplaceAll(result, "{url}", issue.URL)

	// {number} - Issue number
	result = strings.ReplaceAll(result, "{number}", strconv.Itoa(issue.Number))

	// {repo} - Repository slug ("owner/name")
	result = strings.ReplaceAll(result, "{repo}", repo)

	return result
}
