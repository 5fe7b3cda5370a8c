// ABOUTME: CLI command for migrating from Charm KV to local Badger storage.
// ABOUTME: Copies all records via the shared export format.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/charm"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate from Charm KV to local storage",
	Long: `Migrate workout data from Charm KV storage to the local Badger store.

Use this when switching from "backend": "charm" to local-only storage.
Both backends share the same record format, so the migration is a plain
copy: sessions, exercises, goals, and profile all come across.

  - Existing local records with the same IDs are overwritten
  - The Charm data is left untouched; remove it yourself afterward
  - Run with --dry-run first to see what would be migrated

USAGE:

  lift migrate --dry-run   # Preview what would be migrated
  lift migrate             # Perform the migration

AFTER MIGRATION:

  Set "backend": "badger" (or remove the key) in ~/.config/lift/config.json.
  The old cloud data lives at ~/.local/share/charm/kv/lift/ if you want
  to delete it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open charm storage: %w", err)
		}
		if cfg.GetBackend() != "charm" {
			// Otherwise repo is this same client and PostRun closes it.
			defer func() { _ = src.Close() }()
		}

		data, err := src.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to read charm data: %w", err)
		}

		fmt.Printf("Found %d sessions, %d exercises\n", len(data.Sessions), len(data.Exercises))

		if migrateDryRun {
			color.Yellow("Dry run - nothing migrated")
			return nil
		}

		// With backend=badger the local store is already open as repo;
		// opening it twice would deadlock on the directory lock.
		var dst storage.Repository
		if cfg.GetBackend() == "badger" {
			dst = repo
		} else {
			dir := filepath.Join(cfg.GetDataDir(), "db")
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			local, err := storage.OpenBadger(dir)
			if err != nil {
				return fmt.Errorf("failed to open local storage: %w", err)
			}
			defer func() { _ = local.Close() }()
			dst = local
		}

		if err := dst.ImportData(data); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d sessions, %d exercises", len(data.Sessions), len(data.Exercises))
		fmt.Println("  Set \"backend\": \"badger\" in your config to use the local store.")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
