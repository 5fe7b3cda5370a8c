// ABOUTME: Tests for MCP tool handlers against a real local store.
// ABOUTME: Handlers are invoked directly; transport is exercised elsewhere.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/lift/internal/advice"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/harperreed/lift/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo, err := storage.OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	s, err := NewServer(repo, advice.NewService(nil))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

func TestHandleLogWorkoutAndGetSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleLogWorkout(ctx, nil, logWorkoutInput{
		Exercises: []exerciseInput{{
			Name:        "Squat",
			MuscleGroup: "Legs",
			Sets:        []setInput{{Weight: 100, Reps: 5}},
		}},
		Notes: "solid session",
	})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	if out.Volume != 500 {
		t.Errorf("volume = %v, want 500", out.Volume)
	}

	_, got, err := s.handleGetSession(ctx, nil, getSessionInput{ID: out.ID})
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatal("nil session")
	}
}

func TestHandleLogWorkoutSummaryOnly(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleLogWorkout(context.Background(), nil, logWorkoutInput{Volume: 3200})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	if out.Volume != 3200 {
		t.Errorf("volume = %v, want 3200", out.Volume)
	}
}

func TestHandleLogWorkoutBadDate(t *testing.T) {
	s := newTestServer(t)
	if _, _, err := s.handleLogWorkout(context.Background(), nil, logWorkoutInput{Date: "yesterday-ish"}); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestHandleWeeklyStats(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleLogWorkout(ctx, nil, logWorkoutInput{
		Exercises: []exerciseInput{{
			Name:        "Bench Press",
			MuscleGroup: "Chest",
			Sets:        []setInput{{Weight: 80, Reps: 10}},
		}},
	}); err != nil {
		t.Fatalf("log workout: %v", err)
	}

	_, raw, err := s.handleWeeklyStats(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	stats, ok := raw.(analytics.WeeklyStats)
	if !ok {
		t.Fatalf("unexpected result type %T", raw)
	}
	if stats.TotalVolume != 800 {
		t.Errorf("total volume = %v, want 800", stats.TotalVolume)
	}
	if stats.Streak != 1 {
		t.Errorf("streak = %d, want 1", stats.Streak)
	}
}

func TestHandleSetGoalsValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleSetGoals(ctx, nil, setGoalsInput{ActiveGoals: []string{"steps"}}); err == nil {
		t.Fatal("expected error for unknown goal type")
	}

	target := 20000.0
	if _, _, err := s.handleSetGoals(ctx, nil, setGoalsInput{TargetVolumePerWeek: &target}); err != nil {
		t.Fatalf("set goals: %v", err)
	}
	gs, _ := s.repo.LoadGoalSettings()
	if gs.TargetVolumePerWeek != 20000 {
		t.Errorf("target = %v, want 20000", gs.TargetVolumePerWeek)
	}
	// Untouched fields keep defaults.
	if gs.TargetSessionsPerMonth != 12 {
		t.Errorf("sessions target = %v, want 12", gs.TargetSessionsPerMonth)
	}
}

func TestHandleCoachAdviceFallback(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleCoachAdvice(context.Background(), nil, coachAdviceInput{})
	if err != nil {
		t.Fatalf("coach advice: %v", err)
	}
	if !strings.Contains(out.Message, "Not enough training history") {
		t.Errorf("advice = %q, want the no-data fallback", out.Message)
	}

	if _, _, err := s.handleCoachAdvice(context.Background(), nil, coachAdviceInput{Topic: "sleep"}); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestHandleGetPRsEmpty(t *testing.T) {
	s := newTestServer(t)
	_, raw, err := s.handleGetPRs(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("get prs: %v", err)
	}
	if m, ok := raw.(map[string]interface{}); !ok || m["message"] == nil {
		t.Errorf("expected message result, got %#v", raw)
	}
}
