// ABOUTME: CLI commands for the interactive session workflow.
// ABOUTME: start opens a draft, add appends exercises, done commits, cancel discards.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	startNotes string
	doneNotes  string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a workout session",
	Long: `Start a draft workout session.

The draft survives across invocations, so you can add exercises between
sets from your phone or terminal and commit when you rack the last bar:

  lift start
  lift add Squat legs 100x5 100x5 105x3
  lift add "Bench Press" chest 80x8 80x8
  lift done

Only one draft exists at a time; a second start is refused until you
run done or cancel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := repo.LoadDraft()
		if err != nil {
			return err
		}
		if draft != nil {
			return fmt.Errorf("a session is already in progress (started %s); run 'lift done' or 'lift cancel' first",
				draft.Date.Format("2006-01-02 15:04"))
		}

		w := models.NewWorkoutSession()
		if startNotes != "" {
			w.WithNotes(startNotes)
		}
		if err := repo.SaveDraft(w); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		color.Green("✓ Session started")
		fmt.Println("  Add exercises with: lift add <name> <muscle> <sets...>")
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> <muscle> <sets...>",
	Short: "Add an exercise to the current session",
	Long: `Add an exercise to the in-progress session.

Sets are WEIGHTxREPS, space or comma separated. Append ! to a set you
planned but didn't complete; incomplete sets never count toward volume.

Examples:
  lift add Squat legs 100x5 100x5 105x3
  lift add "Bench Press" chest 80x8,80x8,80x6
  lift add Deadlift back 140x5 150x3!`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := repo.LoadDraft()
		if err != nil {
			return err
		}
		if draft == nil {
			return fmt.Errorf("no session in progress; run 'lift start' first")
		}

		sets, err := parseSets(args[2:])
		if err != nil {
			return err
		}

		entry := models.ExerciseEntry{
			Name:        args[0],
			MuscleGroup: models.NormalizeMuscleGroup(args[1]),
			Sets:        sets,
		}
		draft.AddEntry(entry)

		if err := repo.SaveDraft(draft); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		color.Green("✓ Added %s (%s)", entry.Name, entry.MuscleGroup)
		fmt.Printf("  %d sets, volume so far: %.0f\n", len(sets), draft.ComputedVolume())
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Finish and save the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := repo.LoadDraft()
		if err != nil {
			return err
		}
		if draft == nil {
			return fmt.Errorf("no session in progress; run 'lift start' first")
		}
		if len(draft.Exercises) == 0 {
			return fmt.Errorf("session is empty; add exercises or run 'lift cancel'")
		}

		if doneNotes != "" {
			draft.WithNotes(doneNotes)
		}

		if err := repo.AppendSession(draft); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		if err := repo.ClearDraft(); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}

		color.Green("✓ Session saved")
		faint := color.New(color.Faint)
		fmt.Printf("  ID: %s\n", faint.Sprint(draft.ID.String()[:8]))
		fmt.Printf("  Exercises: %d  Volume: %.0f\n", len(draft.Exercises), draft.Volume)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := repo.LoadDraft()
		if err != nil {
			return err
		}
		if draft == nil {
			fmt.Println("No session in progress.")
			return nil
		}
		if err := repo.ClearDraft(); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		color.Yellow("✗ Session discarded (%d exercises)", len(draft.Exercises))
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startNotes, "notes", "n", "", "session notes")
	doneCmd.Flags().StringVarP(&doneNotes, "notes", "n", "", "session notes")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(cancelCmd)
}
