// ABOUTME: Parsing helpers for CLI set and exercise specs.
// ABOUTME: Sets are "WEIGHTxREPS"; a trailing ! marks a set as not completed.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/lift/internal/models"
)

// parseSet parses a single "WEIGHTxREPS" spec. A trailing "!" marks the
// set as planned-but-missed: "120x3!".
func parseSet(spec string) (models.Set, error) {
	completed := true
	if strings.HasSuffix(spec, "!") {
		completed = false
		spec = strings.TrimSuffix(spec, "!")
	}

	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return models.Set{}, fmt.Errorf("invalid set %q (want WEIGHTxREPS, e.g. 100x5)", spec)
	}

	weight, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || weight < 0 {
		return models.Set{}, fmt.Errorf("invalid weight in set %q", spec)
	}
	reps, err := strconv.Atoi(parts[1])
	if err != nil || reps < 0 {
		return models.Set{}, fmt.Errorf("invalid reps in set %q", spec)
	}

	return models.Set{Weight: weight, Reps: reps, Completed: completed}, nil
}

// parseSets parses a comma-separated list of set specs.
func parseSets(specs []string) ([]models.Set, error) {
	var sets []models.Set
	for _, group := range specs {
		for _, spec := range strings.Split(group, ",") {
			spec = strings.TrimSpace(spec)
			if spec == "" {
				continue
			}
			set, err := parseSet(spec)
			if err != nil {
				return nil, err
			}
			sets = append(sets, set)
		}
	}
	return sets, nil
}

// parseExerciseSpec parses a full "NAME:GROUP:SETS" spec used by
// lift log --ex, e.g. "Squat:legs:100x5,100x5,105x3".
func parseExerciseSpec(spec string) (models.ExerciseEntry, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return models.ExerciseEntry{}, fmt.Errorf("invalid exercise %q (want NAME:GROUP:SETS)", spec)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return models.ExerciseEntry{}, fmt.Errorf("invalid exercise %q: empty name", spec)
	}

	sets, err := parseSets([]string{parts[2]})
	if err != nil {
		return models.ExerciseEntry{}, err
	}
	if len(sets) == 0 {
		return models.ExerciseEntry{}, fmt.Errorf("invalid exercise %q: no sets", spec)
	}

	return models.ExerciseEntry{
		Name:        name,
		MuscleGroup: models.NormalizeMuscleGroup(parts[1]),
		Sets:        sets,
	}, nil
}
