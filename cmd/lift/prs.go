// ABOUTME: CLI command for listing personal records.
// ABOUTME: Replays history chronologically; shows newest records first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/spf13/cobra"
)

var prsLimit int

var prsCmd = &cobra.Command{
	Use:   "prs",
	Short: "List personal records",
	Long: `List personal records, newest first.

A PR is a strict improvement on an exercise's best completed-set weight,
replayed over your full history in date order. Matching a previous best
doesn't count; neither do incomplete sets or zero weights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := repo.LoadHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		prs := analytics.RecentPRs(history, prsLimit)
		if len(prs) == 0 {
			fmt.Println("No personal records yet. Go lift something heavy.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, pr := range prs {
			fmt.Printf("%s %s %g\n",
				faint.Sprint(pr.Timestamp.Format("2006-01-02")),
				padRight(pr.ExerciseName, 20),
				pr.Weight)
		}
		return nil
	},
}

func init() {
	prsCmd.Flags().IntVarP(&prsLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(prsCmd)
}
