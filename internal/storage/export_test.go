// ABOUTME: Tests for export/import round trips.
// ABOUTME: Covers JSON round trip, YAML shape, and Markdown rendering.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/lift/internal/models"
)

func TestExportImportJSONRoundtrip(t *testing.T) {
	src := openTestStore(t)

	w := testSession(time.Now())
	notes := "felt strong"
	w.Notes = &notes
	if err := src.AppendSession(w); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := src.CreateExercise(models.NewExercise("Squat", "Legs")); err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	gs := models.DefaultGoalSettings()
	gs.TargetPRsPerMonth = 8
	if err := src.SaveGoalSettings(gs); err != nil {
		t.Fatalf("save goals: %v", err)
	}

	data, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := openTestStore(t)
	if err := ImportJSON(dst, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := dst.GetSession(w.ID.String())
	if err != nil {
		t.Fatalf("get imported session: %v", err)
	}
	if got.Notes == nil || *got.Notes != "felt strong" {
		t.Errorf("notes lost in round trip: %+v", got.Notes)
	}
	gotGoals, _ := dst.LoadGoalSettings()
	if gotGoals.TargetPRsPerMonth != 8 {
		t.Errorf("goals lost in round trip: %+v", gotGoals)
	}
	exercises, _ := dst.ListExercises()
	if len(exercises) != 1 {
		t.Errorf("got %d exercises, want 1", len(exercises))
	}
}

func TestExportYAMLShape(t *testing.T) {
	s := openTestStore(t)
	if err := s.AppendSession(testSession(time.Now())); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := ExportYAML(s)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	out := string(data)
	for _, want := range []string{"tool: lift", "sessions:", "name: Squat", "muscle: Legs"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML missing %q:\n%s", want, out)
		}
	}
}

func TestExportMarkdown(t *testing.T) {
	s := openTestStore(t)
	now := time.Now()
	if err := s.AppendSession(testSession(now)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendSession(testSession(now.AddDate(0, 0, -30))); err != nil {
		t.Fatalf("append: %v", err)
	}

	md, err := ExportMarkdown(s, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(md, "# Training Log") || !strings.Contains(md, "100x5") {
		t.Errorf("unexpected markdown:\n%s", md)
	}

	since := now.AddDate(0, 0, -7)
	md, err = ExportMarkdown(s, &since)
	if err != nil {
		t.Fatalf("export since: %v", err)
	}
	if strings.Count(md, "## ") != 1 {
		t.Errorf("since filter kept %d sessions, want 1:\n%s", strings.Count(md, "## "), md)
	}
}
