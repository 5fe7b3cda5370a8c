// ABOUTME: CLI command for the weekly training dashboard.
// ABOUTME: Volume with trend, muscle distribution, streak, PRs, ACWR, goal progress.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"dashboard"},
	Short:   "Weekly training dashboard",
	Long: `Show the weekly training dashboard.

THE NUMBERS:

  Volume        Sum of weight x reps over completed sets, this week
                (rolling 7 days) vs the week before.
  Distribution  Volume share per muscle group with week-over-week trend.
  Streak        Consecutive calendar days with at least one session.
  ACWR          Acute (7-day) vs chronic (28-day) daily load ratio.
                0.8-1.3 is the sweet spot; above 1.5 is injury country.
  Goals         Progress toward your active monthly/weekly targets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := repo.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		gs, err := repo.LoadGoalSettings()
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}

		now := time.Now()
		stats := analytics.ComputeWeeklyStats(history, now)
		acwr := analytics.ComputeACWR(history, now)
		progress := analytics.ComputeGoalProgress(stats, gs)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		// Volume
		bold.Println("This Week")
		fmt.Printf("  Volume: %.0f %s\n", stats.TotalVolume,
			trendMark(stats.TotalVolume, stats.PrevWeekVolume))
		fmt.Printf("  Sessions: %d   Streak: %d days\n", stats.SessionsCount, stats.Streak)

		// Distribution
		if len(stats.MuscleDistribution) > 0 {
			bold.Println("\nMuscle Distribution")
			for _, mv := range stats.MuscleDistribution {
				fmt.Printf("  %s %3d%% %s %s\n",
					padRight(string(mv.Name), 10), mv.Percent,
					trendArrow(mv.Trend),
					faint.Sprintf("(%.0f)", mv.Value))
			}
		}
		if stats.NeglectedMuscle != "" {
			fmt.Printf("  %s\n", faint.Sprintf("Neglected: %s", stats.NeglectedMuscle))
		}

		// PRs
		if len(stats.RecentPRs) > 0 {
			bold.Println("\nRecent PRs")
			for _, pr := range stats.RecentPRs {
				fmt.Printf("  %s %g %s\n", padRight(pr.ExerciseName, 16), pr.Weight,
					faint.Sprint(pr.Timestamp.Format("2006-01-02")))
			}
		}

		// ACWR
		bold.Println("\nWorkload Ratio")
		risk := analytics.RiskLabel(acwr.ACWR)
		fmt.Printf("  ACWR: %.2f  %s\n", acwr.ACWR, riskColored(risk))
		fmt.Printf("  %s\n", faint.Sprintf("acute %.0f / chronic %.0f", acwr.AcuteVolume, acwr.ChronicVolume))

		// Goals
		if len(progress) > 0 {
			bold.Println("\nGoals")
			for _, p := range progress {
				fmt.Printf("  %s %3d%% %s\n",
					padRight(string(p.Type), 10), p.Percent,
					faint.Sprintf("(%.0f / %.0f)", p.Current, p.Target))
			}
			fmt.Printf("  Overall: %d%%\n", analytics.GlobalProgress(progress))
		}

		return nil
	},
}

func trendMark(current, prev float64) string {
	switch {
	case current > prev:
		return color.GreenString("↑")
	case current < prev:
		return color.RedString("↓")
	default:
		return "→"
	}
}

func trendArrow(t analytics.Trend) string {
	switch t {
	case analytics.TrendUp:
		return color.GreenString("↑")
	case analytics.TrendDown:
		return color.RedString("↓")
	default:
		return "→"
	}
}

func riskColored(label string) string {
	switch label {
	case analytics.RiskDanger:
		return color.RedString(label)
	case analytics.RiskOverreaching:
		return color.YellowString(label)
	case analytics.RiskOptimal:
		return color.GreenString(label)
	default:
		return label
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
