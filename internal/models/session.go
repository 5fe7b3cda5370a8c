// ABOUTME: WorkoutSession, ExerciseEntry, and Set models for the history log.
// ABOUTME: Sessions are append-only and normalized once at the storage boundary.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Set is a single set within an exercise entry. Only completed sets
// count toward volume, distribution, and PR detection.
type Set struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// Volume returns weight*reps for a completed set, 0 otherwise.
func (s Set) Volume() float64 {
	if !s.Completed {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// ExerciseEntry is one exercise performed in a session. Name and
// MuscleGroup are denormalized at logging time so the entry survives
// library renames and deletions.
type ExerciseEntry struct {
	ExerciseID  string      `json:"exercise_id,omitempty"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	Sets        []Set       `json:"sets,omitempty"`
}

// Volume returns the completed-set volume of the entry.
func (e ExerciseEntry) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// MaxCompletedWeight returns the heaviest completed-set weight, 0 when
// no set was completed.
func (e ExerciseEntry) MaxCompletedWeight() float64 {
	var max float64
	for _, s := range e.Sets {
		if s.Completed && s.Weight > max {
			max = s.Weight
		}
	}
	return max
}

// WorkoutSession is one completed or manually logged workout. Created
// once, appended to the history log, never mutated afterward.
type WorkoutSession struct {
	ID        uuid.UUID       `json:"id"`
	Date      time.Time       `json:"date"`
	Exercises []ExerciseEntry `json:"exercises,omitempty"`
	// Volume is the precomputed session total. Recomputed from completed
	// sets when the session has any, kept as stored for summary-only
	// records logged without set detail.
	Volume    float64   `json:"volume"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWorkoutSession creates an empty session dated now.
func NewWorkoutSession() *WorkoutSession {
	now := time.Now()
	return &WorkoutSession{
		ID:        uuid.New(),
		Date:      now,
		CreatedAt: now,
	}
}

// WithDate sets a custom session date.
func (w *WorkoutSession) WithDate(t time.Time) *WorkoutSession {
	w.Date = t
	return w
}

// WithNotes sets notes on the session.
func (w *WorkoutSession) WithNotes(notes string) *WorkoutSession {
	w.Notes = &notes
	return w
}

// AddEntry appends an exercise entry, normalizing its muscle group.
func (w *WorkoutSession) AddEntry(e ExerciseEntry) *WorkoutSession {
	if !IsValidMuscleGroup(string(e.MuscleGroup)) {
		e.MuscleGroup = NormalizeMuscleGroup(string(e.MuscleGroup))
	}
	w.Exercises = append(w.Exercises, e)
	return w
}

// ComputedVolume returns the completed-set volume across all entries.
func (w *WorkoutSession) ComputedVolume() float64 {
	var total float64
	for _, e := range w.Exercises {
		total += e.Volume()
	}
	return total
}

// HasSets reports whether any entry carries set detail.
func (w *WorkoutSession) HasSets() bool {
	for _, e := range w.Exercises {
		if len(e.Sets) > 0 {
			return true
		}
	}
	return false
}

// NormalizeSession maps an arbitrary stored session into the strict
// shape the analytics core expects. All defaulting happens here, once,
// so the aggregation functions never see malformed input: negative
// weights and reps are clamped to zero, muscle groups are normalized
// onto the canonical set, and Volume is recomputed from completed sets
// whenever set detail exists.
func NormalizeSession(w *WorkoutSession) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Date.IsZero() {
		w.Date = w.CreatedAt
	}
	for i := range w.Exercises {
		e := &w.Exercises[i]
		if !IsValidMuscleGroup(string(e.MuscleGroup)) {
			e.MuscleGroup = NormalizeMuscleGroup(string(e.MuscleGroup))
		}
		for j := range e.Sets {
			if e.Sets[j].Weight < 0 {
				e.Sets[j].Weight = 0
			}
			if e.Sets[j].Reps < 0 {
				e.Sets[j].Reps = 0
			}
		}
	}
	if w.HasSets() {
		w.Volume = w.ComputedVolume()
	}
	if w.Volume < 0 {
		w.Volume = 0
	}
}
