// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/advice"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Workout logger with training analytics",
	Long: `Lift is a CLI tool for logging strength training and analyzing it.

WHAT IT TRACKS:

  Sessions    exercises, sets (weight x reps), completion, notes
  Analytics   weekly volume, muscle balance, streaks, PRs
  Fatigue     acute:chronic workload ratio with risk bands
  Goals       monthly sessions, weekly volume, monthly PRs

QUICK START:

  $ lift log --ex "Squat:legs:100x5,100x5,105x3"   # One-shot session
  $ lift start                                      # Or build one up...
  $ lift add "Bench Press" chest 80x8 80x8 80x6     # ...exercise by exercise
  $ lift done                                       # ...and commit it
  $ lift stats                                      # Weekly dashboard
  $ lift prs                                        # Personal records

GOALS AND COACHING:

  $ lift goals                  # Progress toward active goals
  $ lift goals set --volume 18000
  $ lift coach                  # Fatigue advice (works fully offline)

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Sessions live in a local Badger store at ~/.local/share/lift by default.
  Set "backend": "charm" in ~/.config/lift/config.json for E2E-encrypted
  sync across devices via Charm Cloud.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		switch cmd.Name() {
		case "version", "help", "completion", "install-skill":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// coach builds the advice provider from config. Without an endpoint it
// serves the built-in fallback texts.
func coach() advice.Provider {
	if cfg == nil || cfg.Coach.Endpoint == "" {
		return advice.NewService(nil)
	}
	client := advice.NewClient(
		cfg.Coach.Endpoint,
		cfg.Coach.Model,
		cfg.Coach.APIKey(),
		time.Duration(cfg.Coach.Timeout())*time.Second,
	)
	return advice.NewService(client)
}
