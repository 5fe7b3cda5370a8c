// ABOUTME: CLI commands for the exercise library.
// ABOUTME: Supports add, list, rename, and delete subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise library",
	Long: `Manage your exercise library.

Sessions reference library exercises weakly: renaming or deleting an
exercise never rewrites logged history. PRs key on the exercise ID, so
a renamed exercise keeps its record lineage.

COMMANDS:

  add      Add an exercise with its muscle group
  list     List the library
  rename   Change an exercise's display name
  delete   Remove an exercise from the library`,
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <name> <muscle>",
	Short: "Add an exercise",
	Long: `Add an exercise to the library.

Muscle groups: Chest, Back, Legs, Shoulders, Arms, Core. Spanish names
(pecho, espalda, piernas, hombros, brazos) are accepted too; anything
unrecognized lands in Core.

Examples:
  lift exercises add "Bench Press" chest
  lift exercises add Sentadilla piernas`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := models.NewExercise(args[0], args[1])
		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s (%s)", e.Name, e.MuscleGroup)
		fmt.Printf("  ID: %s\n", e.ID.String()[:8])
		return nil
	},
}

var exercisesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.ListExercises()
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises yet. Add one with: lift exercises add <name> <muscle>")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(e.Name, 24),
				e.MuscleGroup)
		}
		return nil
	},
}

var exercisesRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename an exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.RenameExercise(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to rename exercise: %w", err)
		}
		color.Green("✓ Renamed to %s", args[1])
		return nil
	},
}

var exercisesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise",
	Long:  "Delete an exercise from the library. Logged sessions are untouched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteExercise(args[0]); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

func init() {
	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesRenameCmd)
	exercisesCmd.AddCommand(exercisesDeleteCmd)
	rootCmd.AddCommand(exercisesCmd)
}
