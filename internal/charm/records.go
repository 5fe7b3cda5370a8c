// ABOUTME: Workout record operations for Charm KV storage.
// ABOUTME: Implements the storage Repository over cloud-synced key-value data.
package charm

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

// Key layout matches the Badger backend so migrations are a plain copy.
const (
	sessionPrefix  = storage.SessionPrefix
	exercisePrefix = storage.ExercisePrefix

	goalsKey   = "goals"
	profileKey = "profile"
	draftKey   = "draft"
)

// AppendSession stores a completed workout session in the KV store.
func (c *Client) AppendSession(w *models.WorkoutSession) error {
	models.NormalizeSession(w)
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return c.set(sessionPrefix+w.ID.String(), data)
}

// GetSession retrieves a session by ID or ID prefix.
func (c *Client) GetSession(idOrPrefix string) (*models.WorkoutSession, error) {
	data, err := c.getByIDPrefix("session", sessionPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	w, err := unmarshalJSON[models.WorkoutSession](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return w, nil
}

// ListSessions retrieves sessions sorted by date descending.
func (c *Client) ListSessions(limit int) ([]*models.WorkoutSession, error) {
	allData, err := c.listByPrefix(sessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []*models.WorkoutSession
	for _, data := range allData {
		w, err := unmarshalJSON[models.WorkoutSession](data)
		if err != nil {
			continue
		}
		sessions = append(sessions, w)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// LoadHistory returns the full session history sorted by date ascending.
func (c *Client) LoadHistory() ([]models.WorkoutSession, error) {
	allData, err := c.listByPrefix(sessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	history := make([]models.WorkoutSession, 0, len(allData))
	for _, data := range allData {
		w, err := unmarshalJSON[models.WorkoutSession](data)
		if err != nil {
			continue
		}
		models.NormalizeSession(w)
		history = append(history, *w)
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history, nil
}

// SaveDraft stores the in-progress session, replacing any existing draft.
func (c *Client) SaveDraft(w *models.WorkoutSession) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return c.set(draftKey, data)
}

// LoadDraft returns the in-progress session, or nil when none exists.
func (c *Client) LoadDraft() (*models.WorkoutSession, error) {
	data, err := c.get(draftKey)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	w, err := unmarshalJSON[models.WorkoutSession](data)
	if err != nil {
		return nil, nil
	}
	return w, nil
}

// ClearDraft removes the in-progress session.
func (c *Client) ClearDraft() error {
	return c.delete(draftKey)
}

// CreateExercise stores a new catalog exercise.
func (c *Client) CreateExercise(e *models.Exercise) error {
	e.MuscleGroup = models.NormalizeMuscleGroup(string(e.MuscleGroup))
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return c.set(exercisePrefix+e.ID.String(), data)
}

// GetExercise retrieves a catalog exercise by ID or ID prefix.
func (c *Client) GetExercise(idOrPrefix string) (*models.Exercise, error) {
	data, err := c.getByIDPrefix("exercise", exercisePrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	e, err := unmarshalJSON[models.Exercise](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal exercise: %w", err)
	}
	return e, nil
}

// ListExercises returns the catalog sorted by name.
func (c *Client) ListExercises() ([]*models.Exercise, error) {
	allData, err := c.listByPrefix(exercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var exercises []*models.Exercise
	for _, data := range allData {
		e, err := unmarshalJSON[models.Exercise](data)
		if err != nil {
			continue
		}
		exercises = append(exercises, e)
	}

	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	return exercises, nil
}

// RenameExercise changes the display name of a catalog exercise.
func (c *Client) RenameExercise(idOrPrefix, newName string) error {
	e, err := c.GetExercise(idOrPrefix)
	if err != nil {
		return err
	}
	e.Name = newName
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return c.set(exercisePrefix+e.ID.String(), data)
}

// DeleteExercise removes a catalog exercise. Logged history is untouched.
func (c *Client) DeleteExercise(idOrPrefix string) error {
	e, err := c.GetExercise(idOrPrefix)
	if err != nil {
		return err
	}
	return c.delete(exercisePrefix + e.ID.String())
}

// LoadGoalSettings returns the stored goal settings, or defaults.
func (c *Client) LoadGoalSettings() (models.GoalSettings, error) {
	data, err := c.get(goalsKey)
	if err != nil {
		return models.DefaultGoalSettings(), fmt.Errorf("load goal settings: %w", err)
	}
	if data == nil {
		return models.DefaultGoalSettings(), nil
	}
	gs, err := unmarshalJSON[models.GoalSettings](data)
	if err != nil {
		return models.DefaultGoalSettings(), nil
	}
	return *gs, nil
}

// SaveGoalSettings persists goal settings.
func (c *Client) SaveGoalSettings(gs models.GoalSettings) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("marshal goal settings: %w", err)
	}
	return c.set(goalsKey, data)
}

// LoadProfile returns the stored profile, or defaults.
func (c *Client) LoadProfile() (models.Profile, error) {
	data, err := c.get(profileKey)
	if err != nil {
		return models.DefaultProfile(), fmt.Errorf("load profile: %w", err)
	}
	if data == nil {
		return models.DefaultProfile(), nil
	}
	p, err := unmarshalJSON[models.Profile](data)
	if err != nil {
		return models.DefaultProfile(), nil
	}
	return *p, nil
}

// SaveProfile persists the user profile.
func (c *Client) SaveProfile(p models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return c.set(profileKey, data)
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	sessions, err := c.ListSessions(0)
	if err != nil {
		return nil, err
	}
	exercises, err := c.ListExercises()
	if err != nil {
		return nil, err
	}
	goals, err := c.LoadGoalSettings()
	if err != nil {
		return nil, err
	}
	profile, err := c.LoadProfile()
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		Sessions:   sessions,
		Exercises:  exercises,
		Goals:      goals,
		Profile:    profile,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, e := range data.Exercises {
		if err := c.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, w := range data.Sessions {
		if err := c.AppendSession(w); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	if err := c.SaveGoalSettings(data.Goals); err != nil {
		return fmt.Errorf("import goals: %w", err)
	}
	if err := c.SaveProfile(data.Profile); err != nil {
		return fmt.Errorf("import profile: %w", err)
	}
	return nil
}
