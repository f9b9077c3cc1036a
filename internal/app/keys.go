package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/lanternhq/lantern/internal/config"
	"github.com/lanternhq/lantern/internal/ui"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Actions
	Open    key.Binding
	Detail  key.Binding
	Refresh key.Binding
	Filter  key.Binding
	Scope   key.Binding

	// General
	Cancel key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open in browser"),
		),
		Detail: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "details"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Scope: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle open/closed/all"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Up != "" {
		km.Up = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		)
	}
	if cfg.Down != "" {
		km.Down = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		)
	}
	if cfg.Home != "" {
		km.Home = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Home)...),
			key.WithHelp(cfg.Home, "first"),
		)
	}
	if cfg.End != "" {
		km.End = key.NewBinding(
			key.WithKeys(parseKeys(cfg.End)...),
			key.WithHelp(cfg.End, "last"),
		)
	}
	if cfg.Open != "" {
		km.Open = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open in browser"),
		)
	}
	if cfg.Detail != "" {
		km.Detail = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Detail)...),
			key.WithHelp(cfg.Detail, "details"),
		)
	}
	if cfg.Refresh != "" {
		km.Refresh = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refresh"),
		)
	}
	if cfg.Filter != "" {
		km.Filter = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Filter)...),
			key.WithHelp(cfg.Filter, "filter"),
		)
	}
	if cfg.Scope != "" {
		km.Scope = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Scope)...),
			key.WithHelp(cfg.Scope, "cycle open/closed/all"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// helpSections builds the help screen content from the key map.
func helpSections(km KeyMap) []ui.HelpSection {
	return []ui.HelpSection{
		{
			Title: "Navigation",
			Bindings: []ui.HelpBinding{
				{Keys: km.Up.Help().Key, Desc: km.Up.Help().Desc},
				{Keys: km.Down.Help().Key, Desc: km.Down.Help().Desc},
				{Keys: km.Home.Help().Key, Desc: km.Home.Help().Desc},
				{Keys: km.End.Help().Key, Desc: km.End.Help().Desc},
			},
		},
		{
			Title: "Issues",
			Bindings: []ui.HelpBinding{
				{Keys: km.Open.Help().Key, Desc: km.Open.Help().Desc},
				{Keys: km.Detail.Help().Key, Desc: km.Detail.Help().Desc},
				{Keys: km.Refresh.Help().Key, Desc: km.Refresh.Help().Desc},
				{Keys: km.Filter.Help().Key, Desc: km.Filter.Help().Desc},
				{Keys: km.Scope.Help().Key, Desc: km.Scope.Help().Desc},
			},
		},
		{
			Title: "General",
			Bindings: []ui.HelpBinding{
				{Keys: km.Help.Help().Key, Desc: km.Help.Help().Desc},
				{Keys: km.Quit.Help().Key, Desc: km.Quit.Help().Desc},
			},
		},
	}
}
