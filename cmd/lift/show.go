// ABOUTME: CLI command for showing a single workout session.
// ABOUTME: Prints exercises, sets, completion marks, and per-exercise volume.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show session details",
	Long: `Show a workout session by ID or 8-character ID prefix.

Incomplete sets are marked with ✗ and excluded from volume.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("Session: %s\n", faint.Sprint(w.ID.String()[:8]))
		fmt.Printf("Date: %s\n", w.Date.Format("2006-01-02 15:04"))
		fmt.Printf("Volume: %.0f\n", w.Volume)
		if w.Notes != nil && *w.Notes != "" {
			fmt.Printf("Notes: %s\n", *w.Notes)
		}

		for _, ex := range w.Exercises {
			fmt.Printf("\n%s %s\n", ex.Name, faint.Sprintf("(%s)", ex.MuscleGroup))
			for _, set := range ex.Sets {
				mark := color.GreenString("✓")
				if !set.Completed {
					mark = color.RedString("✗")
				}
				fmt.Printf("  %s %gx%d\n", mark, set.Weight, set.Reps)
			}
			fmt.Printf("  %s\n", faint.Sprintf("volume %.0f", ex.Volume()))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
