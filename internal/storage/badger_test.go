// ABOUTME: Tests for the Badger-backed repository.
// ABOUTME: Covers CRUD on sessions and exercises, drafts, settings, and prefix lookup.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/lift/internal/models"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSession(date time.Time) *models.WorkoutSession {
	w := models.NewWorkoutSession().WithDate(date)
	w.AddEntry(models.ExerciseEntry{
		Name:        "Squat",
		MuscleGroup: models.MuscleLegs,
		Sets:        []models.Set{{Weight: 100, Reps: 5, Completed: true}},
	})
	return w
}

func TestAppendAndGetSession(t *testing.T) {
	s := openTestStore(t)

	w := testSession(time.Now())
	if err := s.AppendSession(w); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.GetSession(w.ID.String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != w.ID {
		t.Errorf("got ID %s, want %s", got.ID, w.ID)
	}
	if got.Volume != 500 {
		t.Errorf("got volume %v, want 500 (normalized on write)", got.Volume)
	}
}

func TestGetSessionByPrefix(t *testing.T) {
	s := openTestStore(t)

	w := testSession(time.Now())
	if err := s.AppendSession(w); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.GetSession(w.ID.String()[:8])
	if err != nil {
		t.Fatalf("get by prefix: %v", err)
	}
	if got.ID != w.ID {
		t.Errorf("got ID %s, want %s", got.ID, w.ID)
	}

	var nf *ErrNotFound
	if _, err := s.GetSession("ffffffff"); !errors.As(err, &nf) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessionsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)

	now := time.Now()
	for i := 0; i < 5; i++ {
		if err := s.AppendSession(testSession(now.AddDate(0, 0, -i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sessions, err := s.ListSessions(3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].Date.After(sessions[i-1].Date) {
			t.Error("sessions not sorted newest first")
		}
	}
}

func TestLoadHistorySkipsMalformed(t *testing.T) {
	s := openTestStore(t)

	if err := s.AppendSession(testSession(time.Now())); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Plant a corrupt record under the session prefix.
	if err := s.set(SessionPrefix+"garbage", []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("got %d sessions, want 1 (corrupt record skipped)", len(history))
	}
}

func TestLoadHistoryAscending(t *testing.T) {
	s := openTestStore(t)

	now := time.Now()
	for _, daysAgo := range []int{3, 1, 7} {
		if err := s.AppendSession(testSession(now.AddDate(0, 0, -daysAgo))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	history, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	for i := 1; i < len(history); i++ {
		if history[i].Date.Before(history[i-1].Date) {
			t.Error("history not sorted oldest first")
		}
	}
}

func TestDraftLifecycle(t *testing.T) {
	s := openTestStore(t)

	// No draft yet.
	draft, err := s.LoadDraft()
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if draft != nil {
		t.Fatal("expected nil draft on fresh store")
	}

	w := testSession(time.Now())
	if err := s.SaveDraft(w); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	draft, err = s.LoadDraft()
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if draft == nil || draft.ID != w.ID {
		t.Fatalf("draft = %+v, want session %s", draft, w.ID)
	}

	if err := s.ClearDraft(); err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	draft, _ = s.LoadDraft()
	if draft != nil {
		t.Error("draft survived ClearDraft")
	}

	// Clearing again is a no-op, not an error.
	if err := s.ClearDraft(); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestExerciseCatalog(t *testing.T) {
	s := openTestStore(t)

	e := models.NewExercise("Press Banca", "pecho")
	if err := s.CreateExercise(e); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetExercise(e.ID.String()[:8])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MuscleGroup != models.MuscleChest {
		t.Errorf("muscle group = %s, want Chest (normalized on write)", got.MuscleGroup)
	}

	if err := s.RenameExercise(e.ID.String(), "Bench Press"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ = s.GetExercise(e.ID.String())
	if got.Name != "Bench Press" {
		t.Errorf("name = %q after rename", got.Name)
	}

	if err := s.DeleteExercise(e.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetExercise(e.ID.String()); err == nil {
		t.Error("exercise still present after delete")
	}
}

func TestListExercisesSortedByName(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"Squat", "Bench Press", "Row"} {
		if err := s.CreateExercise(models.NewExercise(name, "Legs")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	exercises, err := s.ListExercises()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exercises) != 3 || exercises[0].Name != "Bench Press" || exercises[2].Name != "Squat" {
		t.Errorf("unexpected order: %v", exerciseNames(exercises))
	}
}

func exerciseNames(exercises []*models.Exercise) []string {
	names := make([]string, len(exercises))
	for i, e := range exercises {
		names[i] = e.Name
	}
	return names
}

func TestGoalSettingsDefaultsAndRoundtrip(t *testing.T) {
	s := openTestStore(t)

	gs, err := s.LoadGoalSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if gs.TargetSessionsPerMonth != 12 || gs.TargetVolumePerWeek != 15000 || gs.TargetPRsPerMonth != 5 {
		t.Errorf("defaults = %+v", gs)
	}

	gs.TargetVolumePerWeek = 20000
	gs.ActiveGoals = []models.GoalType{models.GoalVolume}
	if err := s.SaveGoalSettings(gs); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := s.LoadGoalSettings()
	if got.TargetVolumePerWeek != 20000 || len(got.ActiveGoals) != 1 {
		t.Errorf("roundtrip = %+v", got)
	}
}

func TestProfileDefaultsAndRoundtrip(t *testing.T) {
	s := openTestStore(t)

	p, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Unit() != models.UnitKg {
		t.Errorf("default unit = %s, want kg", p.Unit())
	}

	p.Name = "Harper"
	p.WeightUnit = models.UnitLb
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := s.LoadProfile()
	if got.Name != "Harper" || got.Unit() != models.UnitLb {
		t.Errorf("roundtrip = %+v", got)
	}
}
