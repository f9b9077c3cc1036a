package tracker

import (
	"fmt"
	"strconv"
)

// Scope selects which issue states to list.
type Scope string

const (
	ScopeOpen   Scope = "open"
	ScopeClosed Scope = "closed"
	ScopeAll    Scope = "all"
)

// Next cycles open -> closed -> all -> open.
func (s Scope) Next() Scope {
	switch s {
	case ScopeOpen:
		return ScopeClosed
	case ScopeClosed:
		return ScopeAll
	default:
		return ScopeOpen
	}
}

// listFields is the JSON field set requested for issue rows.
const listFields = "number,title,state,author,createdAt,updatedAt,comments,labels,url"

// List fetches issues for a repository. An empty repo lets gh infer
// the repository from the current directory.
func List(repo string, scope Scope, limit int) ([]Issue, error) {
	if limit <= 0 {
		limit = 50
	}
	if scope == "" {
		scope = ScopeOpen
	}

	args := []string{
		"issue", "list",
		"--state", string(scope),
		"--limit", strconv.Itoa(limit),
		"--json", listFields,
	}
	if repo != "" {
		args = append(args, "--repo", repo)
	}

	output, err := runGH(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	return decodeIssues([]byte(output))
}
