package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/lanternhq/lantern/internal/render"
	"github.com/lanternhq/lantern/internal/tracker"
)

// State constants (matching app.State)
const (
	StateList = iota
	StateFilter
	StateDetail
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// Params contains all parameters needed for rendering one frame.
type Params struct {
	State    int
	RepoSlug string
	Scope    tracker.Scope

	// Outcome is the resolved issue-list snapshot; Issues is the
	// filtered slice actually shown when the outcome succeeded.
	Outcome render.Outcome[[]tracker.Issue]
	Issues  []tracker.Issue
	Cursor  int

	FilterInput string
	FilterValue string

	DetailOutcome render.Outcome[*tracker.IssueDetail]

	ShowAuthor   bool
	ShowLabels   bool
	ShowComments bool

	// Notice is a transient message (e.g. a failed open command)
	// shown above the list; cleared on the next keypress.
	Notice string

	HelpSections []HelpSection
}

// Screen returns the leaf render for the given frame. The decorator
// chain wraps it; Context supplies theme and dimensions.
func Screen(p Params) View {
	return func(ctx Context) string {
		switch p.State {
		case StateFilter:
			return renderFilter(p, ctx)
		case StateDetail:
			return renderDetail(p, ctx)
		case StateHelp:
			return renderHelp(p, ctx)
		default:
			return renderList(p, ctx)
		}
	}
}

// renderList renders the main issue list.
func renderList(p Params, ctx Context) string {
	var b strings.Builder
	t := ctx.Theme
	contentWidth := ctx.Width - 4 // Account for box borders and padding

	header := t.Header.Render("ISSUES") + "  " + t.Muted.Render(p.RepoSlug) +
		"  " + t.Label.Render("["+string(p.Scope)+"]")
	b.WriteString(header + "\n")
	b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")

	if p.Notice != "" {
		b.WriteString(t.Error.Render(p.Notice) + "\n")
	}

	switch p.Outcome.Phase {
	case render.PhaseLoading:
		b.WriteString("\n" + t.Spinner.Render(SpinnerFrame()) + " Loading issues...\n")

	case render.PhaseFailed:
		b.WriteString("\n" + t.Error.Render("Error: "+p.Outcome.Err.Error()) + "\n")
		b.WriteString(t.Muted.Render("Press 'r' to retry.") + "\n")

	case render.PhaseSucceeded:
		if len(p.Issues) == 0 {
			if p.FilterValue != "" {
				b.WriteString("\n" + t.Muted.Render("No issues match "+p.FilterValue+".") + "\n")
			} else {
				b.WriteString("\n" + t.Muted.Render("No "+string(p.Scope)+" issues found.") + "\n")
			}
		} else {
			for i, issue := range p.Issues {
				b.WriteString(renderIssueEntry(issue, i == p.Cursor, contentWidth, p, t))
				if i < len(p.Issues)-1 {
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\n" + t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")
	helpText := compactHelp(
		"enter open • tab detail • r refresh • s scope • / filter • ? help • q quit",
		"enter•tab•r•s•/•?•q",
		ctx.Width,
	)
	b.WriteString(t.Help.Render(helpText))

	return b.String()
}

// renderIssueEntry renders a single issue row with its detail line.
func renderIssueEntry(issue tracker.Issue, selected bool, width int, p Params, t Theme) string {
	var lines []string

	// Line 1: Cursor + state symbol + number + title
	cursor := "  "
	if selected {
		cursor = t.Selected.Render(SymbolCursor + " ")
	}

	state := t.Open.Render(SymbolOpen)
	if !issue.IsOpen() {
		state = t.Closed.Render(SymbolClosed)
	}

	number := t.Number.Render(fmt.Sprintf("#%d", issue.Number))

	title := truncate(issue.Title, width-12)
	if selected {
		title = t.Selected.Render(title)
	} else {
		title = t.Normal.Render(title)
	}
	lines = append(lines, cursor+state+" "+number+" "+title)

	// Line 2: author, comments, age, labels
	indent := "    "
	var metaParts []string

	if p.ShowAuthor && issue.Author != "" {
		metaParts = append(metaParts, issue.Author)
	}
	if p.ShowComments && issue.Comments > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%d comments", issue.Comments))
	}
	if !issue.UpdatedAt.IsZero() {
		metaParts = append(metaParts, relTime(issue.UpdatedAt))
	}

	meta := t.Muted.Render(strings.Join(metaParts, " • "))

	if p.ShowLabels && len(issue.Labels) > 0 {
		meta += "  " + t.Label.Render(strings.Join(issue.Labels, ","))
	}

	if meta != "" {
		lines = append(lines, indent+meta)
	}

	return strings.Join(lines, "\n")
}

// renderFilter renders the filter mode.
func renderFilter(p Params, ctx Context) string {
	var b strings.Builder
	t := ctx.Theme
	contentWidth := ctx.Width - 4

	b.WriteString(t.Header.Render("FILTER") + "  ")
	b.WriteString(p.FilterInput + "\n")
	b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")

	if len(p.Issues) == 0 {
		b.WriteString("\n" + t.Muted.Render("No matches found.") + "\n")
	} else {
		for i, issue := range p.Issues {
			b.WriteString(renderIssueEntry(issue, i == p.Cursor, contentWidth, p, t))
			if i < len(p.Issues)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n" + t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")
	b.WriteString(t.Help.Render("enter select • esc clear"))

	return b.String()
}

// renderDetail renders the expanded view of one issue.
func renderDetail(p Params, ctx Context) string {
	var b strings.Builder
	t := ctx.Theme
	contentWidth := ctx.Width - 4

	switch p.DetailOutcome.Phase {
	case render.PhaseLoading:
		b.WriteString(t.Header.Render("ISSUE") + "\n")
		b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n\n")
		b.WriteString(t.Spinner.Render(SpinnerFrame()) + " Loading issue...\n")

	case render.PhaseFailed:
		b.WriteString(t.Header.Render("ISSUE") + "\n")
		b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n\n")
		b.WriteString(t.Error.Render("Error: "+p.DetailOutcome.Err.Error()) + "\n")

	case render.PhaseSucceeded:
		d := p.DetailOutcome.Data

		state := t.Open.Render(SymbolOpen + " open")
		if !d.IsOpen() {
			state = t.Closed.Render(SymbolClosed + " closed")
		}
		b.WriteString(t.Header.Render(fmt.Sprintf("ISSUE #%d", d.Number)) + "  " + state + "\n")
		b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n\n")

		b.WriteString(t.Selected.Render(d.Title) + "\n")

		var metaParts []string
		if d.Author != "" {
			metaParts = append(metaParts, "opened by "+d.Author)
		}
		if !d.CreatedAt.IsZero() {
			metaParts = append(metaParts, relTime(d.CreatedAt))
		}
		if len(d.Labels) > 0 {
			metaParts = append(metaParts, strings.Join(d.Labels, ","))
		}
		b.WriteString(t.Muted.Render(strings.Join(metaParts, " • ")) + "\n\n")

		if d.Body != "" {
			b.WriteString(t.Normal.Render(d.Body) + "\n")
		} else {
			b.WriteString(t.Muted.Render("No description provided.") + "\n")
		}

		for _, c := range d.CommentList {
			b.WriteString("\n" + t.Divider.Render(strings.Repeat("─", contentWidth/2)) + "\n")
			b.WriteString(t.Muted.Render(c.Author+" • "+relTime(c.CreatedAt)) + "\n")
			b.WriteString(t.Normal.Render(c.Body) + "\n")
		}
	}

	b.WriteString("\n" + t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")
	b.WriteString(t.Help.Render("enter open in browser • esc back"))

	return b.String()
}

// renderHelp renders the help screen.
func renderHelp(p Params, ctx Context) string {
	var b strings.Builder
	t := ctx.Theme
	contentWidth := ctx.Width - 4

	b.WriteString(t.Header.Render("HELP") + "\n")
	b.WriteString(t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(t.Selected.Render(section.Title) + "\n")
		b.WriteString(t.Divider.Render(strings.Repeat("─", 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 10 chars for alignment
			keys := binding.Keys
			if len(keys) < 10 {
				keys = keys + strings.Repeat(" ", 10-len(keys))
			}
			b.WriteString(t.Muted.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + t.Divider.Render(strings.Repeat("─", contentWidth)) + "\n")
	b.WriteString(t.Help.Render("Press any key to close"))

	return b.String()
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerFrame returns the spinner frame for the current time so the
// spinner animates on re-render.
func SpinnerFrame() string {
	return spinnerFrames[time.Now().UnixMilli()/120%int64(len(spinnerFrames))]
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 80 {
		return full
	}
	return compact
}

// truncate shortens s to at most n runes, adding an ellipsis.
func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// relTime formats a timestamp as a short relative age.
func relTime(ts time.Time) string {
	d := time.Since(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
