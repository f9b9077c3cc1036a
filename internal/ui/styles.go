package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds all the lipgloss styles for one color scheme. Keeping
// them in a struct rather than package globals lets dark and light
// coexist and makes the theme an explicit value the decorator chain
// carries.
type Theme struct {
	Name string

	// Chrome
	Header  lipgloss.Style
	Divider lipgloss.Style
	Help    lipgloss.Style
	Box     lipgloss.Style

	// List items
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Number   lipgloss.Style

	// Issue states
	Open   lipgloss.Style
	Closed lipgloss.Style
	Label  lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Spinner lipgloss.Style
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Number: lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")),
		Open: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")),
	}
}

// LightTheme returns a theme for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("240")),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Number: lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")),
		Open: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),
		Closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("90")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("130")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("124")),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")),
	}
}

// ThemeByName maps a config theme name to a Theme. "auto" and unknown
// names fall back to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// Symbols
const (
	SymbolCursor = "›"
	SymbolOpen   = "●"
	SymbolClosed = "✓"
)
