// ABOUTME: Badger-backed implementation of the storage Repository.
// ABOUTME: Stores JSON records under prefixed keys in a local key-value store.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/lift/internal/models"
)

const (
	SessionPrefix  = "session:"
	ExercisePrefix = "exercise:"

	goalsKey   = "goals"
	profileKey = "profile"
	draftKey   = "draft"
)

// BadgerStore is a local key-value backed Repository.
type BadgerStore struct {
	db *badger.DB
	mu sync.RWMutex
}

// OpenBadger opens (or creates) a Badger store at the given directory.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// set stores a value with the given key.
func (s *BadgerStore) set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get retrieves a value by exact key. Returns (nil, nil) when absent.
func (s *BadgerStore) get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// delete removes a key. Deleting an absent key is not an error.
func (s *BadgerStore) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// listByPrefix returns all values with keys matching the given prefix.
func (s *BadgerStore) listByPrefix(prefix string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			results = append(results, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// getByIDPrefix retrieves a single value whose key starts with
// typePrefix+idPrefix. Errors if no match or more than one.
func (s *BadgerStore) getByIDPrefix(kind, typePrefix, idPrefix string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches [][]byte
	search := []byte(typePrefix + idPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(search); it.Valid(); it.Next() {
			if !bytes.HasPrefix(it.Item().Key(), search) {
				break
			}
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			matches = append(matches, val)
			if len(matches) > 1 {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, &ErrNotFound{Kind: kind, Ref: idPrefix}
	}
	if len(matches) > 1 {
		return nil, &ErrAmbiguous{Kind: kind, Ref: idPrefix}
	}
	return matches[0], nil
}

// unmarshalJSON is a helper to unmarshal JSON data.
func unmarshalJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AppendSession stores a completed workout session. The session is
// normalized before writing so malformed input never reaches disk.
func (s *BadgerStore) AppendSession(w *models.WorkoutSession) error {
	models.NormalizeSession(w)
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.set(SessionPrefix+w.ID.String(), data)
}

// GetSession retrieves a session by ID or ID prefix.
func (s *BadgerStore) GetSession(idOrPrefix string) (*models.WorkoutSession, error) {
	data, err := s.getByIDPrefix("session", SessionPrefix, idOrPrefix)
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
// Malformed records are skipped rather than failing the whole listing.
func (s *BadgerStore) ListSessions(limit int) ([]*models.WorkoutSession, error) {
	allData, err := s.listByPrefix(SessionPrefix)
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

// LoadHistory returns the full session history sorted by date ascending,
// normalized and ready for the analytics engine.
func (s *BadgerStore) LoadHistory() ([]models.WorkoutSession, error) {
	allData, err := s.listByPrefix(SessionPrefix)
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
func (s *BadgerStore) SaveDraft(w *models.WorkoutSession) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.set(draftKey, data)
}

// LoadDraft returns the in-progress session, or nil when none exists.
func (s *BadgerStore) LoadDraft() (*models.WorkoutSession, error) {
	data, err := s.get(draftKey)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	w, err := unmarshalJSON[models.WorkoutSession](data)
	if err != nil {
		// A corrupt draft should not brick the workflow.
		return nil, nil
	}
	return w, nil
}

// ClearDraft removes the in-progress session.
func (s *BadgerStore) ClearDraft() error {
	return s.delete(draftKey)
}

// CreateExercise stores a new catalog exercise.
func (s *BadgerStore) CreateExercise(e *models.Exercise) error {
	e.MuscleGroup = models.NormalizeMuscleGroup(string(e.MuscleGroup))
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return s.set(ExercisePrefix+e.ID.String(), data)
}

// GetExercise retrieves a catalog exercise by ID or ID prefix.
func (s *BadgerStore) GetExercise(idOrPrefix string) (*models.Exercise, error) {
	data, err := s.getByIDPrefix("exercise", ExercisePrefix, idOrPrefix)
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
func (s *BadgerStore) ListExercises() ([]*models.Exercise, error) {
	allData, err := s.listByPrefix(ExercisePrefix)
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
// Past sessions keep the name they were logged with.
func (s *BadgerStore) RenameExercise(idOrPrefix, newName string) error {
	e, err := s.GetExercise(idOrPrefix)
	if err != nil {
		return err
	}
	e.Name = newName
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return s.set(ExercisePrefix+e.ID.String(), data)
}

// DeleteExercise removes a catalog exercise. Logged history is untouched.
func (s *BadgerStore) DeleteExercise(idOrPrefix string) error {
	e, err := s.GetExercise(idOrPrefix)
	if err != nil {
		return err
	}
	return s.delete(ExercisePrefix + e.ID.String())
}

// LoadGoalSettings returns the stored goal settings, or defaults when
// none (or a corrupt record) exist.
func (s *BadgerStore) LoadGoalSettings() (models.GoalSettings, error) {
	data, err := s.get(goalsKey)
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
func (s *BadgerStore) SaveGoalSettings(gs models.GoalSettings) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("marshal goal settings: %w", err)
	}
	return s.set(goalsKey, data)
}

// LoadProfile returns the stored profile, or defaults when none exists.
func (s *BadgerStore) LoadProfile() (models.Profile, error) {
	data, err := s.get(profileKey)
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
func (s *BadgerStore) SaveProfile(p models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.set(profileKey, data)
}
