package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.General.Limit != 100 {
		t.Errorf("Expected default limit 100, got %d", cfg.General.Limit)
	}

	if cfg.General.Scope != "open" {
		t.Errorf("Expected default scope 'open', got %q", cfg.General.Scope)
	}

	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected default theme 'auto', got %q", cfg.UI.Theme)
	}

	if !cfg.UI.Frame {
		t.Error("Expected Frame to be true by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name: "invalid repo slug",
			config: &Config{
				General: GeneralConfig{Repo: "not-a-slug"},
			},
			wantWarning: true,
		},
		{
			name: "invalid scope",
			config: &Config{
				General: GeneralConfig{Scope: "resolved"},
			},
			wantWarning: true,
		},
		{
			name: "limit out of range",
			config: &Config{
				General: GeneralConfig{Limit: 5000},
			},
			wantWarning: true,
		},
		{
			name: "invalid template variable",
			config: &Config{
				Open: OpenConfig{Command: "open {invalid_var}"},
			},
			wantWarning: true,
		},
		{
			name: "valid template variables",
			config: &Config{
				Open: OpenConfig{Command: "firefox {url} # issue {number} of {repo}"},
			},
			wantWarning: false,
		},
		{
			name: "invalid theme",
			config: &Config{
				UI: UIConfig{Theme: "solarized"},
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.General.Limit != 100 {
		t.Errorf("Expected default limit 100, got %d", cfg.General.Limit)
	}
}

func TestLoadFromPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
repo = "acme/widget"

[ui]
theme = "light"
show_labels = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.General.Repo != "acme/widget" {
		t.Errorf("Expected repo acme/widget, got %q", cfg.General.Repo)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Expected theme light, got %q", cfg.UI.Theme)
	}
	if cfg.UI.ShowLabels {
		t.Error("Expected show_labels to be overridden to false")
	}
	// Fields absent from the file keep their defaults.
	if cfg.General.Limit != 100 {
		t.Errorf("Expected default limit 100 preserved, got %d", cfg.General.Limit)
	}
	if !cfg.UI.ShowAuthor {
		t.Error("Expected show_author default true preserved")
	}
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestGenerateDefaultConfigContentRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("Generated default config failed to parse: %v", err)
	}
	if warnings := cfg.Validate(); len(warnings) > 0 {
		t.Errorf("Generated default config has warnings: %v", warnings)
	}
}
