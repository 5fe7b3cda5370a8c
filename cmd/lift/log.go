// ABOUTME: CLI command for one-shot session logging.
// ABOUTME: Takes repeatable --ex specs or a bare --volume for summary records.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	logExercises []string
	logVolume    float64
	logDate      string
	logNotes     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a complete workout in one command",
	Long: `Log a complete workout session without the start/add/done dance.

Each --ex flag is one exercise: NAME:GROUP:SETS with comma-separated
WEIGHTxREPS sets. Append ! to sets you didn't complete.

For sessions imported from elsewhere where only a total is known, pass
--volume instead of exercises; such summary records feed the fatigue
ratio but not PRs or muscle distribution.

EXAMPLES:

  lift log --ex "Squat:legs:100x5,100x5,105x3"
  lift log --ex "Press Banca:pecho:80x8,80x8" --ex "Curl:arms:20x12"
  lift log --volume 5400 --date 2025-06-02
  lift log --ex "Deadlift:back:140x5,150x3!" --notes "grip gave out"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(logExercises) == 0 && logVolume <= 0 {
			return fmt.Errorf("nothing to log: pass --ex or --volume")
		}

		w := models.NewWorkoutSession()

		if logDate != "" {
			t, err := time.Parse(time.RFC3339, logDate)
			if err != nil {
				t, err = time.Parse("2006-01-02", logDate)
			}
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", logDate)
			}
			w.WithDate(t)
		}
		if logNotes != "" {
			w.WithNotes(logNotes)
		}

		for _, spec := range logExercises {
			entry, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			w.AddEntry(entry)
		}
		if len(logExercises) == 0 {
			w.Volume = logVolume
		}

		if err := repo.AppendSession(w); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		color.Green("✓ Logged workout")
		faint := color.New(color.Faint)
		fmt.Printf("  ID: %s\n", faint.Sprint(w.ID.String()[:8]))
		fmt.Printf("  Exercises: %d  Volume: %.0f\n", len(w.Exercises), w.Volume)
		return nil
	},
}

func init() {
	logCmd.Flags().StringArrayVarP(&logExercises, "ex", "e", nil, "exercise spec NAME:GROUP:SETS (repeatable)")
	logCmd.Flags().Float64Var(&logVolume, "volume", 0, "total volume for summary-only sessions")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "session date (YYYY-MM-DD, default now)")
	logCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "session notes")
	rootCmd.AddCommand(logCmd)
}
