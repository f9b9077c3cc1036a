// Package tracker provides GitHub issue data via the gh CLI.
package tracker

import (
	"encoding/json"
	"fmt"
	"time"
)

// State is the lifecycle state of an issue.
type State string

const (
	StateOpen   State = "OPEN"
	StateClosed State = "CLOSED"
)

// Issue holds the fields needed to render an issue row.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     State     `json:"state"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  int       `json:"comments"`
	Labels    []string  `json:"labels"`
	URL       string    `json:"url"`
}

// IsOpen reports whether the issue is still open.
func (i Issue) IsOpen() bool {
	return i.State == StateOpen
}

// issueJSON mirrors the gh issue list/view JSON shape. The comments
// field is the full comment array; list output has no count field.
type issueJSON struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Author struct {
		Login string `json:"login"`
	} `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Comments  []commentJSON `json:"comments"`
	Labels    []struct {
		Name string `json:"name"`
	} `json:"labels"`
	URL  string `json:"url"`
	Body string `json:"body"`
}

type commentJSON struct {
	Author struct {
		Login string `json:"login"`
	} `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func (raw issueJSON) toIssue() Issue {
	issue := Issue{
		Number:    raw.Number,
		Title:     raw.Title,
		State:     State(raw.State),
		Author:    raw.Author.Login,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
		Comments:  len(raw.Comments),
		URL:       raw.URL,
	}
	for _, l := range raw.Labels {
		issue.Labels = append(issue.Labels, l.Name)
	}
	return issue
}

// decodeIssues parses gh issue list JSON output.
func decodeIssues(data []byte) ([]Issue, error) {
	var raws []issueJSON
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to parse issue list: %w", err)
	}

	issues := make([]Issue, 0, len(raws))
	for _, raw := range raws {
		issues = append(issues, raw.toIssue())
	}
	return issues, nil
}
