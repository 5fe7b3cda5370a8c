// ABOUTME: CLI command for listing workout sessions.
// ABOUTME: One line per session with ID prefix, date, exercise count, and volume.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout sessions",
	Long: `List recent workout sessions, newest first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  EXERCISES  VOLUME  (NOTES)

  The ID is an 8-character prefix you can use with 'lift show'.

EXAMPLES:

  lift list          # Show last 20 sessions
  lift list -n 50    # Show last 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(listLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range sessions {
			notes := ""
			if w.Notes != nil && *w.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %s %8.0f%s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.Date.Format("2006-01-02 15:04")),
				padRight(fmt.Sprintf("%d exercises", len(w.Exercises)), 14),
				w.Volume,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
