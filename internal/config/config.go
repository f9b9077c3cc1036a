// Package config handles lantern configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents lantern configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Open    OpenConfig    `toml:"open"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Repository slug ("owner/name"); empty = detect from cwd
	Repo string `toml:"repo"`

	// Maximum number of issues to fetch per listing
	Limit int `toml:"limit"`

	// Initial state scope: "open", "closed", or "all"
	Scope string `toml:"scope"`
}

// OpenConfig contains settings for opening issues.
type OpenConfig struct {
	// Command to run when opening an issue (empty = gh issue view --web)
	// Template variables: {url}, {number}, {repo}
	Command string `toml:"command"`

	// Whether to exit lantern after opening
	ExitAfterOpen bool `toml:"exit_after_open"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show author names in the issue list
	ShowAuthor bool `toml:"show_author"`

	// Show labels in the issue list
	ShowLabels bool `toml:"show_labels"`

	// Show comment counts in the issue list
	ShowComments bool `toml:"show_comments"`

	// Draw a rounded border around the whole UI
	Frame bool `toml:"frame"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Home    string `toml:"home"`
	End     string `toml:"end"`
	Open    string `toml:"open"`
	Detail  string `toml:"detail"`
	Refresh string `toml:"refresh"`
	Filter  string `toml:"filter"`
	Scope   string `toml:"scope"`
	Help    string `toml:"help"`
	Quit    string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Repo:  "",
			Limit: 100,
			Scope: "open",
		},
		Open: OpenConfig{
			Command:       "",
			ExitAfterOpen: false,
		},
		UI: UIConfig{
			Theme:        "auto",
			ShowAuthor:   true,
			ShowLabels:   true,
			ShowComments: true,
			Frame:        true,
		},
		Keys: KeysConfig{
			Up:      "up,k",
			Down:    "down,j",
			Home:    "home,g",
			End:     "end,G",
			Open:    "enter",
			Detail:  "tab",
			Refresh: "r",
			Filter:  "/",
			Scope:   "s",
			Help:    "?",
			Quit:    "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/lantern/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lantern", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "lantern", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "lantern", "config.toml")
	}
	return filepath.Join(configDir, "lantern", "config.toml")
}

// IsFirstRun returns true if no config file exists.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigPath())
	return os.IsNotExist(err)
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile() error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := generateDefaultConfigContent()
	return os.WriteFile(path, []byte(content), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Lantern Configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Repository slug (\"owner/name\"); leave empty to detect from cwd\n")
	fmt.Fprintf(&b, "repo = %q\n", cfg.General.Repo)
	b.WriteString("# Maximum number of issues to fetch per listing\n")
	fmt.Fprintf(&b, "limit = %d\n", cfg.General.Limit)
	b.WriteString("# Initial state scope: \"open\", \"closed\", or \"all\"\n")
	fmt.Fprintf(&b, "scope = %q\n\n", cfg.General.Scope)

	b.WriteString("[open]\n")
	b.WriteString("# Command to run when opening an issue (default: gh issue view --web)\n")
	b.WriteString("# Template variables: {url}, {number}, {repo}\n")
	b.WriteString("# command = \"open {url}\"\n")
	b.WriteString("# Whether to exit lantern after opening an issue\n")
	fmt.Fprintf(&b, "exit_after_open = %v\n\n", cfg.Open.ExitAfterOpen)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Show author names in the issue list\n")
	fmt.Fprintf(&b, "show_author = %v\n", cfg.UI.ShowAuthor)
	b.WriteString("# Show labels in the issue list\n")
	fmt.Fprintf(&b, "show_labels = %v\n", cfg.UI.ShowLabels)
	b.WriteString("# Show comment counts in the issue list\n")
	fmt.Fprintf(&b, "show_comments = %v\n", cfg.UI.ShowComments)
	b.WriteString("# Draw a rounded border around the whole UI\n")
	fmt.Fprintf(&b, "frame = %v\n\n", cfg.UI.Frame)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# open = %q\n", cfg.Keys.Open)
	fmt.Fprintf(&b, "# detail = %q\n", cfg.Keys.Detail)
	fmt.Fprintf(&b, "# refresh = %q\n", cfg.Keys.Refresh)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# scope = %q\n", cfg.Keys.Scope)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.General.Repo != "" && !repoSlugRe.MatchString(c.General.Repo) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.repo: %s (expected owner/name)", c.General.Repo))
	}

	if c.General.Limit < 0 || c.General.Limit > 1000 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.limit: %d (expected 1-1000)", c.General.Limit))
	}

	if c.General.Scope != "" &&
		c.General.Scope != "open" &&
		c.General.Scope != "closed" &&
		c.General.Scope != "all" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.scope: %s (expected open, closed, or all)", c.General.Scope))
	}

	// Check template variables in open command
	validVars := []string{"{url}", "{number}", "{repo}"}
	for _, v := range extractTemplateVars(c.Open.Command) {
		found := false
		for _, valid := range validVars {
			if v == valid {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("Unknown template variable in open.command: %s", v))
		}
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	return warnings
}

var repoSlugRe = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// extractTemplateVars extracts template variables from a string.
func extractTemplateVars(s string) []string {
	re := regexp.MustCompile(`\{[^}]+\}`)
	return re.FindAllString(s, -1)
}
