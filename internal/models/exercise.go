// ABOUTME: Exercise library entry model.
// ABOUTME: History references exercises weakly; renames and deletes never touch logged sessions.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a library entry. Sessions reference it by ID only and
// denormalize its name, so the library can be edited freely without
// invalidating history.
type Exercise struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewExercise creates a library entry with a normalized muscle group.
func NewExercise(name, muscleGroup string) *Exercise {
	return &Exercise{
		ID:          uuid.New(),
		Name:        name,
		MuscleGroup: NormalizeMuscleGroup(muscleGroup),
		CreatedAt:   time.Now(),
	}
}
