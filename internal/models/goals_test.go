// ABOUTME: Tests for goal settings defaults and active-goal filtering.
// ABOUTME: Verifies the fixed goal-type order and default targets.
package models

import "testing"

func TestDefaultGoalSettings(t *testing.T) {
	gs := DefaultGoalSettings()
	if gs.TargetSessionsPerMonth != 12 {
		t.Errorf("TargetSessionsPerMonth = %v, want 12", gs.TargetSessionsPerMonth)
	}
	if gs.TargetVolumePerWeek != 15000 {
		t.Errorf("TargetVolumePerWeek = %v, want 15000", gs.TargetVolumePerWeek)
	}
	if gs.TargetPRsPerMonth != 5 {
		t.Errorf("TargetPRsPerMonth = %v, want 5", gs.TargetPRsPerMonth)
	}
	if len(gs.ActiveGoals) != 3 {
		t.Fatalf("ActiveGoals = %v, want all three", gs.ActiveGoals)
	}
	for _, g := range AllGoalTypes {
		if !gs.IsActive(g) {
			t.Errorf("default settings: %s should be active", g)
		}
	}
}

func TestIsActive(t *testing.T) {
	gs := GoalSettings{ActiveGoals: []GoalType{GoalVolume}}
	if !gs.IsActive(GoalVolume) {
		t.Error("volume should be active")
	}
	if gs.IsActive(GoalSessions) || gs.IsActive(GoalPRs) {
		t.Error("sessions and prs should be inactive")
	}
}

func TestIsValidGoalType(t *testing.T) {
	for _, s := range []string{"sessions", "prs", "volume"} {
		if !IsValidGoalType(s) {
			t.Errorf("IsValidGoalType(%q) = false, want true", s)
		}
	}
	if IsValidGoalType("calories") {
		t.Error("IsValidGoalType(calories) = true, want false")
	}
}
