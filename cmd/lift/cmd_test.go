// ABOUTME: Tests for CLI parsing and formatting helpers.
// ABOUTME: Covers set specs, exercise specs, and output padding.
package main

import (
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		spec    string
		want    models.Set
		wantErr bool
	}{
		{"100x5", models.Set{Weight: 100, Reps: 5, Completed: true}, false},
		{"62.5x8", models.Set{Weight: 62.5, Reps: 8, Completed: true}, false},
		{"120x3!", models.Set{Weight: 120, Reps: 3, Completed: false}, false},
		{"100X5", models.Set{Weight: 100, Reps: 5, Completed: true}, false},
		{"0x10", models.Set{Weight: 0, Reps: 10, Completed: true}, false},
		{"100", models.Set{}, true},
		{"x5", models.Set{}, true},
		{"100x", models.Set{}, true},
		{"-5x5", models.Set{}, true},
		{"100x-3", models.Set{}, true},
		{"heavy x five", models.Set{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseSet(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSet(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSet(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("parseSet(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseSetsMixedSeparators(t *testing.T) {
	sets, err := parseSets([]string{"100x5,100x5", "105x3"})
	if err != nil {
		t.Fatalf("parseSets: %v", err)
	}
	if len(sets) != 3 {
		t.Errorf("got %d sets, want 3", len(sets))
	}
}

func TestParseExerciseSpec(t *testing.T) {
	entry, err := parseExerciseSpec("Press Banca:pecho:80x8,80x8,80x6!")
	if err != nil {
		t.Fatalf("parseExerciseSpec: %v", err)
	}
	if entry.Name != "Press Banca" {
		t.Errorf("name = %q", entry.Name)
	}
	if entry.MuscleGroup != models.MuscleChest {
		t.Errorf("muscle = %s, want Chest", entry.MuscleGroup)
	}
	if len(entry.Sets) != 3 || entry.Sets[2].Completed {
		t.Errorf("sets = %+v", entry.Sets)
	}
}

func TestParseExerciseSpecErrors(t *testing.T) {
	for _, spec := range []string{
		"Squat:legs",     // missing sets
		":legs:100x5",    // empty name
		"Squat:legs:abc", // bad sets
		"Squat:legs:",    // no sets
	} {
		if _, err := parseExerciseSpec(spec); err == nil {
			t.Errorf("parseExerciseSpec(%q) succeeded, want error", spec)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 30); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	got := truncate("a very long note that keeps going and going", 20)
	if len(got) != 20 || got[17:] != "..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0); got != "[░░░░░░░░░░░░░░░░░░░░]" {
		t.Errorf("progressBar(0) = %q", got)
	}
	if got := progressBar(100); got != "[████████████████████]" {
		t.Errorf("progressBar(100) = %q", got)
	}
	// Over-100 inputs clamp instead of panicking.
	if got := progressBar(140); got != progressBar(100) {
		t.Errorf("progressBar(140) = %q", got)
	}
}
