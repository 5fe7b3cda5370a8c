// ABOUTME: CLI commands for goal settings and progress.
// ABOUTME: 'goals' shows progress; 'goals set' updates targets and active goals.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalSessions float64
	goalVolume   float64
	goalPRs      float64
	goalActive   []string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show goal progress",
	Long: `Show progress toward your active goals.

GOAL TYPES:

  sessions   Sessions this calendar month vs monthly target
  prs        Personal records this calendar month vs monthly target
  volume     Volume this rolling week vs weekly target

Each goal caps at 100%; the overall figure is the mean of the active
goals. Defaults: 12 sessions/month, 15000 volume/week, 5 PRs/month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := repo.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		gs, err := repo.LoadGoalSettings()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		stats := analytics.ComputeWeeklyStats(history, time.Now())
		progress := analytics.ComputeGoalProgress(stats, gs)
		if len(progress) == 0 {
			fmt.Println("No active goals. Activate some with: lift goals set --active sessions,prs,volume")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range progress {
			fmt.Printf("%s %s %3d%% %s\n",
				padRight(string(p.Type), 10),
				progressBar(p.Percent),
				p.Percent,
				faint.Sprintf("(%.0f / %.0f)", p.Current, p.Target))
		}
		fmt.Printf("\nOverall: %d%%\n", analytics.GlobalProgress(progress))
		return nil
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update goal targets",
	Long: `Update goal targets and which goals are active.

EXAMPLES:

  lift goals set --volume 18000
  lift goals set --sessions 16 --prs 3
  lift goals set --active volume,prs   # Deactivate the sessions goal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gs, err := repo.LoadGoalSettings()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		if cmd.Flags().Changed("sessions") {
			gs.TargetSessionsPerMonth = goalSessions
		}
		if cmd.Flags().Changed("volume") {
			gs.TargetVolumePerWeek = goalVolume
		}
		if cmd.Flags().Changed("prs") {
			gs.TargetPRsPerMonth = goalPRs
		}
		if cmd.Flags().Changed("active") {
			var active []models.GoalType
			for _, g := range goalActive {
				for _, part := range strings.Split(g, ",") {
					part = strings.TrimSpace(part)
					if part == "" {
						continue
					}
					if !models.IsValidGoalType(part) {
						return fmt.Errorf("unknown goal type: %s (want sessions, prs, or volume)", part)
					}
					active = append(active, models.GoalType(part))
				}
			}
			gs.ActiveGoals = active
		}

		if err := repo.SaveGoalSettings(gs); err != nil {
			return fmt.Errorf("failed to save goals: %w", err)
		}

		color.Green("✓ Goals updated")
		fmt.Printf("  sessions/month: %.0f  volume/week: %.0f  prs/month: %.0f\n",
			gs.TargetSessionsPerMonth, gs.TargetVolumePerWeek, gs.TargetPRsPerMonth)
		return nil
	},
}

func progressBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	goalsSetCmd.Flags().Float64Var(&goalSessions, "sessions", 0, "monthly session target")
	goalsSetCmd.Flags().Float64Var(&goalVolume, "volume", 0, "weekly volume target")
	goalsSetCmd.Flags().Float64Var(&goalPRs, "prs", 0, "monthly PR target")
	goalsSetCmd.Flags().StringSliceVar(&goalActive, "active", nil, "active goal types (sessions, prs, volume)")

	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}
