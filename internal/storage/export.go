// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for workout data.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Sessions   []*models.WorkoutSession `json:"sessions" yaml:"sessions"`
	Exercises  []*models.Exercise       `json:"exercises" yaml:"exercises"`
	Goals      models.GoalSettings      `json:"goals" yaml:"goals"`
	Profile    models.Profile           `json:"profile" yaml:"profile"`
}

// GetAllData retrieves all data for export.
func (s *BadgerStore) GetAllData() (*ExportData, error) {
	sessions, err := s.ListSessions(0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	exercises, err := s.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	goals, err := s.LoadGoalSettings()
	if err != nil {
		return nil, err
	}
	profile, err := s.LoadProfile()
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		Sessions:   sessions,
		Exercises:  exercises,
		Goals:      goals,
		Profile:    profile,
	}, nil
}

// ImportData imports data from an export file. Sessions and exercises
// are upserted by ID; goals and profile are overwritten.
func (s *BadgerStore) ImportData(data *ExportData) error {
	for _, e := range data.Exercises {
		if err := s.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, w := range data.Sessions {
		if err := s.AppendSession(w); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	if err := s.SaveGoalSettings(data.Goals); err != nil {
		return fmt.Errorf("import goals: %w", err)
	}
	if err := s.SaveProfile(data.Profile); err != nil {
		return fmt.Errorf("import profile: %w", err)
	}
	return nil
}

// ExportJSON exports all data from the repository as indented JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML in a compact, human-oriented shape.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Sessions   []yamlSession  `yaml:"sessions"`
		Exercises  []yamlExercise `yaml:"exercises,omitempty"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Sessions:   make([]yamlSession, 0, len(data.Sessions)),
	}

	for _, w := range data.Sessions {
		ys := yamlSession{
			ID:     w.ID.String()[:8],
			Date:   w.Date.Format(time.RFC3339),
			Volume: w.Volume,
		}
		if w.Notes != nil {
			ys.Notes = *w.Notes
		}
		for _, ex := range w.Exercises {
			ye := yamlEntry{
				Name:   ex.Name,
				Muscle: string(ex.MuscleGroup),
			}
			for _, set := range ex.Sets {
				ye.Sets = append(ye.Sets, yamlSet{
					Weight:    set.Weight,
					Reps:      set.Reps,
					Completed: set.Completed,
				})
			}
			ys.Exercises = append(ys.Exercises, ye)
		}
		yamlData.Sessions = append(yamlData.Sessions, ys)
	}

	for _, e := range data.Exercises {
		yamlData.Exercises = append(yamlData.Exercises, yamlExercise{
			ID:     e.ID.String()[:8],
			Name:   e.Name,
			Muscle: string(e.MuscleGroup),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlSession struct {
	ID        string      `yaml:"id"`
	Date      string      `yaml:"date"`
	Volume    float64     `yaml:"volume"`
	Notes     string      `yaml:"notes,omitempty"`
	Exercises []yamlEntry `yaml:"exercises,omitempty"`
}

type yamlEntry struct {
	Name   string    `yaml:"name"`
	Muscle string    `yaml:"muscle"`
	Sets   []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Weight    float64 `yaml:"weight"`
	Reps      int     `yaml:"reps"`
	Completed bool    `yaml:"completed"`
}

type yamlExercise struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Muscle string `yaml:"muscle"`
}

// ExportMarkdown renders a training log as Markdown, newest first,
// optionally limited to sessions on or after since.
func ExportMarkdown(r Repository, since *time.Time) (string, error) {
	sessions, err := r.ListSessions(0)
	if err != nil {
		return "", err
	}

	if since != nil {
		var filtered []*models.WorkoutSession
		for _, w := range sessions {
			if !w.Date.Before(*since) {
				filtered = append(filtered, w)
			}
		}
		sessions = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Training Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, w := range sessions {
		sb.WriteString(fmt.Sprintf("## %s\n\n", w.Date.Format("2006-01-02 15:04")))
		sb.WriteString(fmt.Sprintf("Total volume: %.0f\n\n", w.Volume))
		if len(w.Exercises) > 0 {
			sb.WriteString("| Exercise | Muscle | Sets |\n")
			sb.WriteString("|----------|--------|------|\n")
			for _, ex := range w.Exercises {
				var sets []string
				for _, set := range ex.Sets {
					s := fmt.Sprintf("%gx%d", set.Weight, set.Reps)
					if !set.Completed {
						s += " (skipped)"
					}
					sets = append(sets, s)
				}
				sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
					ex.Name, ex.MuscleGroup, strings.Join(sets, ", ")))
			}
			sb.WriteString("\n")
		}
		if w.Notes != nil && *w.Notes != "" {
			sb.WriteString(fmt.Sprintf("> %s\n\n", *w.Notes))
		}
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes into the repository.
func ImportJSON(r Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return r.ImportData(&exportData)
}
