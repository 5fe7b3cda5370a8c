// ABOUTME: CLI command for first-time setup.
// ABOUTME: Writes a config file and seeds default goals and profile.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	initBackend string
	initName    string
	initUnit    string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lift",
	Long: `Initialize lift: write the config file and seed default settings.

Running init is optional. Every command works on a fresh install with
defaults (local Badger storage, kg, standard goal targets); init just
makes the choices explicit and ready to edit.

EXAMPLES:

  lift init                          # Local storage, kg
  lift init --name Harper --unit lb  # Personalized
  lift init --backend charm          # Cloud-synced storage`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initBackend != "" {
			cfg.Backend = initBackend
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		profile, err := repo.LoadProfile()
		if err != nil {
			return err
		}
		if initName != "" {
			profile.Name = initName
		}
		if initUnit != "" {
			if initUnit != string(models.UnitKg) && initUnit != string(models.UnitLb) {
				return fmt.Errorf("unknown unit: %s (use kg or lb)", initUnit)
			}
			profile.WeightUnit = models.WeightUnit(initUnit)
		}
		if err := repo.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		gs, err := repo.LoadGoalSettings()
		if err != nil {
			return err
		}
		if err := repo.SaveGoalSettings(gs); err != nil {
			return fmt.Errorf("failed to save goals: %w", err)
		}

		color.Green("✓ Initialized lift")
		fmt.Printf("  Config:  %s\n", config.GetConfigPath())
		fmt.Printf("  Backend: %s\n", cfg.GetBackend())
		fmt.Printf("  Data:    %s\n", cfg.GetDataDir())
		fmt.Printf("  Unit:    %s\n", profile.Unit())
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initBackend, "backend", "", "storage backend: badger or charm")
	initCmd.Flags().StringVar(&initName, "name", "", "your name")
	initCmd.Flags().StringVar(&initUnit, "unit", "", "weight unit: kg or lb")
	rootCmd.AddCommand(initCmd)
}
