// ABOUTME: CLI command for coach advice.
// ABOUTME: Fatigue, volume, or target guidance; works fully offline via fallbacks.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/advice"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:       "coach [topic]",
	Short:     "Get coaching advice",
	ValidArgs: []string{"fatigue", "volume", "target"},
	Args:      cobra.MaximumNArgs(1),
	Long: `Get a short piece of coaching advice.

TOPICS:

  fatigue   Workload-ratio guidance (default)
  volume    Commentary on this week's volume and muscle balance
  target    Pacing toward your weekly volume goal

With a coach endpoint configured in ~/.config/lift/config.json the text
comes from the completion API; otherwise (or whenever the endpoint
fails) you get built-in advice derived from the same numbers. The
command never fails because of the network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := "fatigue"
		if len(args) > 0 {
			topic = args[0]
		}

		history, err := repo.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		now := time.Now()
		provider := coach()
		var text string

		switch topic {
		case "fatigue":
			res := analytics.ComputeACWR(history, now)
			text, err = provider.ACWRAdvice(cmd.Context(), advice.ACWRContext{
				ACWR:          res.ACWR,
				RiskLabel:     analytics.RiskLabel(res.ACWR),
				AcuteVolume:   res.AcuteVolume,
				ChronicVolume: res.ChronicVolume,
			})
		case "volume":
			stats := analytics.ComputeWeeklyStats(history, now)
			text, err = provider.VolumeInsight(cmd.Context(), advice.VolumeContext{
				TotalVolume:     stats.TotalVolume,
				PrevWeekVolume:  stats.PrevWeekVolume,
				NeglectedMuscle: stats.NeglectedMuscle,
				Streak:          stats.Streak,
			})
		case "target":
			stats := analytics.ComputeWeeklyStats(history, now)
			gs, gerr := repo.LoadGoalSettings()
			if gerr != nil {
				return fmt.Errorf("failed to load goals: %w", gerr)
			}
			text, err = provider.TargetVolume(cmd.Context(), advice.TargetContext{
				TotalVolume:     stats.TotalVolume,
				TargetVolume:    gs.TargetVolumePerWeek,
				MonthlySessions: stats.MonthlySessions,
			})
		default:
			return fmt.Errorf("unknown topic: %s (want fatigue, volume, or target)", topic)
		}
		if err != nil {
			return fmt.Errorf("failed to generate advice: %w", err)
		}

		color.Cyan("» %s", text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
}
