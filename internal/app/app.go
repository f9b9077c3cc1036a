package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/lanternhq/lantern/internal/config"
	"github.com/lanternhq/lantern/internal/debug"
	"github.com/lanternhq/lantern/internal/exec"
	"github.com/lanternhq/lantern/internal/render"
	"github.com/lanternhq/lantern/internal/tracker"
	"github.com/lanternhq/lantern/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateList State = iota
	StateFilter
	StateDetail
	StateHelp
)

const spinnerInterval = 120 * time.Millisecond

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	repo   string

	// Data
	issues   render.Snapshot[[]tracker.Issue]
	filtered []tracker.Issue
	cursor   int
	scope    tracker.Scope

	// State
	state  State
	notice string

	// Detail flow
	detail    render.Snapshot[*tracker.IssueDetail]
	detailFor int

	// Filter
	filterInput textinput.Model

	// UI
	width  int
	height int
	keys   KeyMap
	chain  []render.Decorator[ui.Context]

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model. This is the composition root: the
// decorator chain is assembled here once and reused for every frame.
func New(cfg *config.Config, repo string) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	scope := tracker.Scope(cfg.General.Scope)
	if scope == "" {
		scope = tracker.ScopeOpen
	}

	theme := ui.ThemeByName(cfg.UI.Theme)

	return Model{
		config:      cfg,
		repo:        repo,
		scope:       scope,
		keys:        KeyMapFromConfig(&cfg.Keys),
		filterInput: filterInput,
		chain:       ui.Chain(theme, cfg.UI.Frame),
		state:       StateList,
		issues:      render.Snapshot[[]tracker.Issue]{Loading: true},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadCachedIssues(m.repo, m.scope, m.config.General.Limit),
		tickSpinner(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) && m.state == StateList {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case SpinnerTickMsg:
		if m.issues.Loading || m.detail.Loading {
			return m, tickSpinner()
		}
		return m, nil

	case IssuesLoadedMsg:
		return m.handleIssuesLoaded(msg)

	case DetailLoadedMsg:
		// Ignore results for an issue we already navigated away from
		if msg.Number != m.detailFor {
			return m, nil
		}
		m.detail = render.Snapshot[*tracker.IssueDetail]{Err: msg.Err}
		if msg.Err == nil {
			m.detail = render.Snapshot[*tracker.IssueDetail]{Data: &msg.Detail}
		}
		return m, nil

	case IssueOpenedMsg:
		if msg.Err != nil {
			debug.Log("open issue: %v", msg.Err)
			m.notice = "Open failed: " + msg.Err.Error()
			return m, nil
		}
		if m.config.Open.ExitAfterOpen {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleIssuesLoaded folds a list result into the issue snapshot. A
// cached result keeps the snapshot in its loading phase (stale data
// shown under a spinner) and triggers the real refresh; a fresh
// result finalizes the snapshot.
func (m Model) handleIssuesLoaded(msg IssuesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.FromCache {
		if msg.Err == nil {
			issues := msg.Issues
			m.issues = render.Snapshot[[]tracker.Issue]{Loading: true, Data: &issues}
			m.applyFilter()
		}
		return m, tea.Batch(
			refreshIssues(m.repo, m.scope, m.config.General.Limit),
			tickSpinner(),
		)
	}

	if msg.Err != nil {
		m.issues = render.Snapshot[[]tracker.Issue]{Err: msg.Err}
		m.filtered = nil
		return m, nil
	}

	issues := msg.Issues
	m.issues = render.Snapshot[[]tracker.Issue]{Data: &issues}
	m.applyFilter()
	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateList:
		return m.handleListKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateDetail:
		return m.handleDetailKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleListKeys handles key presses in the list view.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.filtered) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Open):
		if issue := m.selectedIssue(); issue != nil {
			return m, openIssue(m.config.Open.Command, issue, m.repo)
		}
	case key.Matches(msg, m.keys.Detail):
		if issue := m.selectedIssue(); issue != nil {
			m.state = StateDetail
			m.detailFor = issue.Number
			m.detail = render.Snapshot[*tracker.IssueDetail]{Loading: true}
			return m, tea.Batch(loadDetail(m.repo, issue.Number), tickSpinner())
		}
	case key.Matches(msg, m.keys.Refresh):
		// Keep stale data visible under the spinner
		m.issues.Loading = true
		tracker.InvalidateDetails()
		return m, tea.Batch(
			refreshIssues(m.repo, m.scope, m.config.General.Limit),
			tickSpinner(),
		)
	case key.Matches(msg, m.keys.Scope):
		m.scope = m.scope.Next()
		m.cursor = 0
		// Another scope's rows would be wrong to show, so drop them
		m.issues = render.Snapshot[[]tracker.Issue]{Loading: true}
		m.filtered = nil
		return m, tea.Batch(
			loadCachedIssues(m.repo, m.scope, m.config.General.Limit),
			tickSpinner(),
		)
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil
	}
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateList
		m.filterInput.Reset()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.state = StateList
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleDetailKeys handles key presses in the detail view.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.state = StateList
		m.detail = render.Snapshot[*tracker.IssueDetail]{}
		m.detailFor = 0
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if issue := m.selectedIssue(); issue != nil {
			return m, openIssue(m.config.Open.Command, issue, m.repo)
		}
	case key.Matches(msg, m.keys.Quit):
		m.state = StateList
		m.detail = render.Snapshot[*tracker.IssueDetail]{}
		m.detailFor = 0
		return m, nil
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateList
	return m, nil
}

// selectedIssue returns the issue under the cursor, or nil.
func (m Model) selectedIssue() *tracker.Issue {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.cursor]
}

// issueSource implements fuzzy.Source for issue fuzzy matching.
type issueSource []tracker.Issue

func (s issueSource) String(i int) string {
	issue := s[i]
	parts := fmt.Sprintf("#%d %s %s", issue.Number, issue.Title, issue.Author)
	for _, l := range issue.Labels {
		parts += " " + l
	}
	return parts
}

func (s issueSource) Len() int {
	return len(s)
}

// applyFilter filters issues based on current filter input using fuzzy matching.
func (m *Model) applyFilter() {
	var issues []tracker.Issue
	if m.issues.Data != nil {
		issues = *m.issues.Data
	}

	filter := m.filterInput.Value()
	if filter == "" {
		m.filtered = issues
	} else {
		source := issueSource(issues)
		matches := fuzzy.FindFrom(filter, source)

		m.filtered = nil
		for _, match := range matches {
			m.filtered = append(m.filtered, issues[match.Index])
		}
	}

	// Ensure cursor is in bounds
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI by resolving the current snapshots and running
// the decorated screen render.
func (m Model) View() string {
	outcome, err := render.Resolve(m.issues)
	if err != nil {
		// Snapshot invariant violation. Surface it as a loud error
		// view rather than guessing at an empty list.
		debug.Log("issue snapshot: %v", err)
		outcome = render.Outcome[[]tracker.Issue]{
			Phase: render.PhaseFailed,
			Err:   fmt.Errorf("internal error: %w", err),
		}
	}

	params := ui.Params{
		State:        int(m.state),
		RepoSlug:     m.repo,
		Scope:        m.scope,
		Outcome:      outcome,
		Issues:       m.filtered,
		Cursor:       m.cursor,
		FilterInput:  m.filterInput.View(),
		FilterValue:  m.filterInput.Value(),
		ShowAuthor:   m.config.UI.ShowAuthor,
		ShowLabels:   m.config.UI.ShowLabels,
		ShowComments: m.config.UI.ShowComments,
		Notice:       m.notice,
		HelpSections: helpSections(m.keys),
	}

	if m.state == StateDetail {
		detailOutcome, derr := render.Resolve(m.detail)
		if derr != nil {
			debug.Log("detail snapshot: %v", derr)
			detailOutcome = render.Outcome[*tracker.IssueDetail]{
				Phase: render.PhaseFailed,
				Err:   fmt.Errorf("internal error: %w", derr),
			}
		}
		params.DetailOutcome = detailOutcome
	}

	view := render.Compose(m.chain, ui.Screen(params))
	return view(ui.Context{Width: m.width, Height: m.height})
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Commands

func loadCachedIssues(repo string, scope tracker.Scope, limit int) tea.Cmd {
	return func() tea.Msg {
		defer debug.Timed("load cached issues")()
		issues, fromCache, err := tracker.ListCached(repo, scope, limit)
		return IssuesLoadedMsg{Issues: issues, FromCache: fromCache, Err: err}
	}
}

func refreshIssues(repo string, scope tracker.Scope, limit int) tea.Cmd {
	return func() tea.Msg {
		defer debug.Timed("refresh issues")()
		issues, err := tracker.ListAndCache(repo, scope, limit)
		return IssuesLoadedMsg{Issues: issues, Err: err}
	}
}

func loadDetail(repo string, number int) tea.Cmd {
	return func() tea.Msg {
		detail, err := tracker.Detail(repo, number)
		return DetailLoadedMsg{Number: number, Detail: detail, Err: err}
	}
}

func openIssue(command string, issue *tracker.Issue, repo string) tea.Cmd {
	return func() tea.Msg {
		err := exec.OpenDetached(command, issue, repo)
		return IssueOpenedMsg{Err: err}
	}
}

func tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
