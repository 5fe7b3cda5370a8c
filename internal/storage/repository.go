// ABOUTME: Repository interface for workout data storage.
// ABOUTME: Defines the contract for session history, drafts, exercises, and settings.
package storage

import (
	"github.com/harperreed/lift/internal/models"
)

// Repository defines the storage interface for workout data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Session operations. History is append-only: sessions are never
	// deleted through this interface.
	AppendSession(w *models.WorkoutSession) error
	GetSession(idOrPrefix string) (*models.WorkoutSession, error)
	ListSessions(limit int) ([]*models.WorkoutSession, error)
	LoadHistory() ([]models.WorkoutSession, error)

	// Draft operations for the start/add/done workflow. At most one
	// draft exists at a time.
	SaveDraft(w *models.WorkoutSession) error
	LoadDraft() (*models.WorkoutSession, error)
	ClearDraft() error

	// Exercise catalog operations
	CreateExercise(e *models.Exercise) error
	GetExercise(idOrPrefix string) (*models.Exercise, error)
	ListExercises() ([]*models.Exercise, error)
	RenameExercise(idOrPrefix, newName string) error
	DeleteExercise(idOrPrefix string) error

	// Settings
	LoadGoalSettings() (models.GoalSettings, error)
	SaveGoalSettings(gs models.GoalSettings) error
	LoadProfile() (models.Profile, error)
	SaveProfile(p models.Profile) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// ErrNotFound is returned when a lookup matches no record.
type ErrNotFound struct {
	Kind string
	Ref  string
}

func (e *ErrNotFound) Error() string {
	return e.Kind + " not found: " + e.Ref
}

// ErrAmbiguous is returned when an ID prefix matches more than one record.
type ErrAmbiguous struct {
	Kind string
	Ref  string
}

func (e *ErrAmbiguous) Error() string {
	return "ambiguous " + e.Kind + " prefix " + e.Ref + ": matches multiple records"
}
