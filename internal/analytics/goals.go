// ABOUTME: Goal progress projector mapping aggregates onto user targets.
// ABOUTME: Produces clamped 0-100 percentages; a zero target never divides.
package analytics

import (
	"math"

	"github.com/harperreed/lift/internal/models"
)

// GoalProgress is one goal's display-ready progress.
type GoalProgress struct {
	Type    models.GoalType `json:"type"`
	Current float64         `json:"current"`
	Target  float64         `json:"target"`
	Percent int             `json:"percent"`
}

// ComputeGoalProgress projects weekly stats onto the user's targets.
// The triplet order is fixed (sessions, prs, volume); the result is
// filtered to the active goals, preserving that order. Current values:
// sessions this calendar month, PR events this calendar month, and
// volume this rolling week.
func ComputeGoalProgress(stats WeeklyStats, gs models.GoalSettings) []GoalProgress {
	all := []GoalProgress{
		progress(models.GoalSessions, float64(stats.MonthlySessions), gs.TargetSessionsPerMonth),
		progress(models.GoalPRs, float64(stats.MonthlyPRCount), gs.TargetPRsPerMonth),
		progress(models.GoalVolume, stats.TotalVolume, gs.TargetVolumePerWeek),
	}

	var active []GoalProgress
	for _, p := range all {
		if gs.IsActive(p.Type) {
			active = append(active, p)
		}
	}
	return active
}

// GlobalProgress is the rounded mean over the active goals, 0 when
// none are active.
func GlobalProgress(goals []GoalProgress) int {
	if len(goals) == 0 {
		return 0
	}
	var sum float64
	for _, g := range goals {
		sum += float64(g.Percent)
	}
	return int(math.Round(sum / float64(len(goals))))
}

// progress clamps to [0, 100]. Targets are expected positive but not
// trusted: zero or negative targets produce 0 rather than dividing.
func progress(t models.GoalType, current, target float64) GoalProgress {
	p := GoalProgress{Type: t, Current: current, Target: target}
	if target > 0 && current > 0 {
		p.Percent = int(math.Round(current / target * 100))
		if p.Percent > 100 {
			p.Percent = 100
		}
	}
	return p
}
