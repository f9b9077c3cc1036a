package app

import (
	"github.com/lanternhq/lantern/internal/tracker"
)

// Message types for the bubbletea app.

// IssuesLoadedMsg is sent when an issue list arrives. FromCache marks
// a stale on-disk snapshot served while a network refresh is still in
// flight.
type IssuesLoadedMsg struct {
	Issues    []tracker.Issue
	FromCache bool
	Err       error
}

// DetailLoadedMsg is sent when an issue detail arrives.
type DetailLoadedMsg struct {
	Number int
	Detail *tracker.IssueDetail
	Err    error
}

// IssueOpenedMsg is sent when the open command has been launched.
type IssueOpenedMsg struct {
	Err error
}

// SpinnerTickMsg triggers a re-render while a fetch is in flight.
type SpinnerTickMsg struct{}
