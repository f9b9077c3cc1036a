package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lanternhq/lantern/internal/app"
	"github.com/lanternhq/lantern/internal/config"
	"github.com/lanternhq/lantern/internal/debug"
	"github.com/lanternhq/lantern/internal/tracker"
)

func main() {
	if err := debug.EnableFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	// Write a commented default config on first run
	if config.IsFirstRun() {
		if err := config.CreateDefaultConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	// gh does all the fetching, so it must be there and logged in
	if _, err := tracker.CheckGHAuth(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Determine the repository to browse
	repo := cfg.General.Repo
	if repo == "" {
		repo, err = tracker.DetectRepo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run lantern inside a repository with a GitHub remote, or set general.repo in %s.\n", config.ConfigPath())
			os.Exit(1)
		}
	}

	// Create and run the application
	model := app.New(cfg, repo)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(app.Model); ok {
		if m.ShouldQuit() {
			os.Exit(0)
		}
	}
}
