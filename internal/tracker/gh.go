package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// currentRepo caches the detected repository slug.
var (
	currentRepo string
	repoMu      sync.RWMutex
)

// CheckGHAuth checks if the gh CLI is installed and authenticated.
func CheckGHAuth() (bool, error) {
	_, err := exec.LookPath("gh")
	if err != nil {
		return false, fmt.Errorf("gh CLI not found. Install it from https://cli.github.com")
	}

	cmd := exec.Command("gh", "auth", "status")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("gh CLI not authenticated: %s", strings.TrimSpace(string(output)))
	}

	return true, nil
}

// DetectRepo returns the "owner/name" slug of the repository the
// current directory belongs to. It caches the result for subsequent
// calls.
func DetectRepo() (string, error) {
	repoMu.RLock()
	if currentRepo != "" {
		defer repoMu.RUnlock()
		return currentRepo, nil
	}
	repoMu.RUnlock()

	repoMu.Lock()
	defer repoMu.Unlock()

	// Double-check after acquiring write lock
	if currentRepo != "" {
		return currentRepo, nil
	}

	slug, err := detectRepo()
	if err != nil {
		return "", err
	}
	currentRepo = slug
	return slug, nil
}

// ResetRepo clears the cached repository slug.
func ResetRepo() {
	repoMu.Lock()
	defer repoMu.Unlock()
	currentRepo = ""
}

func detectRepo() (string, error) {
	output, err := runGH("repo", "view", "--json", "nameWithOwner")
	if err != nil {
		return "", fmt.Errorf("no GitHub repository here: %w", err)
	}

	var view struct {
		NameWithOwner string `json:"nameWithOwner"`
	}
	if err := json.Unmarshal([]byte(output), &view); err != nil {
		return "", fmt.Errorf("failed to parse repo view: %w", err)
	}
	if view.NameWithOwner == "" {
		return "", fmt.Errorf("gh repo view returned no repository name")
	}

	return view.NameWithOwner, nil
}

// runGH executes a gh command and returns its stdout.
func runGH(args ...string) (string, error) {
	cmd := exec.Command("gh", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("gh %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
