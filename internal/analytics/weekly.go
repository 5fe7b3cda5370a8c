// ABOUTME: Weekly aggregation engine: volume totals, muscle distribution, trends.
// ABOUTME: Pure functions over a history snapshot; never mutates input, never errors.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// Trend is the week-over-week direction for a muscle group.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MuscleVolume is one muscle group's share of the current week.
type MuscleVolume struct {
	Name    models.MuscleGroup `json:"name"`
	Value   float64            `json:"value"`
	Percent int                `json:"percent"`
	Trend   Trend              `json:"trend"`
}

// WeeklyStats is the dashboard aggregate, recomputed on demand from
// (history, now). It is never persisted.
type WeeklyStats struct {
	TotalVolume        float64            `json:"total_volume"`
	PrevWeekVolume     float64            `json:"prev_week_volume"`
	MuscleDistribution []MuscleVolume     `json:"muscle_distribution"`
	NeglectedMuscle    models.MuscleGroup `json:"neglected_muscle"`
	RecentPRs          []PRRecord         `json:"recent_prs"`
	SessionsCount      int                `json:"sessions_count"`
	MonthlySessions    int                `json:"monthly_sessions"`
	MonthlyPRCount     int                `json:"monthly_pr_count"`
	Streak             int                `json:"streak"`
}

// recentPRLimit is how many PRs the dashboard surfaces.
const recentPRLimit = 3

// ComputeWeeklyStats derives the full dashboard aggregate from the
// history snapshot. The current week is [now-7d, now]; the previous
// week is [now-14d, now-7d), half-open so a session exactly at the
// 7-day mark is counted once.
func ComputeWeeklyStats(history []models.WorkoutSession, now time.Time) WeeklyStats {
	weekStart := now.AddDate(0, 0, -7)
	prevStart := now.AddDate(0, 0, -14)

	stats := WeeklyStats{
		RecentPRs:       RecentPRs(history, recentPRLimit),
		MonthlySessions: MonthlySessionCount(history, now),
		MonthlyPRCount:  MonthlyPRCount(history, now),
		Streak:          Streak(history, now),
	}

	thisWeek := make(map[models.MuscleGroup]float64)
	prevWeek := make(map[models.MuscleGroup]float64)

	for _, w := range history {
		switch {
		case inWindow(w.Date, weekStart, now):
			stats.SessionsCount++
			for _, e := range w.Exercises {
				g := groupOf(e)
				v := e.Volume()
				thisWeek[g] += v
				stats.TotalVolume += v
			}
		case w.Date.Before(weekStart) && !w.Date.Before(prevStart):
			for _, e := range w.Exercises {
				v := e.Volume()
				prevWeek[groupOf(e)] += v
				stats.PrevWeekVolume += v
			}
		}
	}

	stats.MuscleDistribution = distribution(thisWeek, prevWeek, stats.TotalVolume)
	stats.NeglectedMuscle = neglectedMuscle(thisWeek)
	return stats
}

// distribution builds the sorted per-group share of the current week.
// Only groups with volume appear; an empty week yields an empty slice
// so callers render a placeholder state.
func distribution(thisWeek, prevWeek map[models.MuscleGroup]float64, total float64) []MuscleVolume {
	var dist []MuscleVolume
	for _, g := range models.AllMuscleGroups {
		v := thisWeek[g]
		if v <= 0 {
			continue
		}
		percent := 0
		if total > 0 {
			percent = int(math.Round(v / total * 100))
		}
		dist = append(dist, MuscleVolume{
			Name:    g,
			Value:   v,
			Percent: percent,
			Trend:   trendOf(v, prevWeek[g]),
		})
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Value > dist[j].Value
	})
	return dist
}

func trendOf(current, previous float64) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendStable
	}
}

// neglectedMuscle picks the group with the least trained volume this
// week: any zero-volume group wins outright, otherwise the smallest.
// Ties resolve in canonical order so the result is deterministic.
func neglectedMuscle(thisWeek map[models.MuscleGroup]float64) models.MuscleGroup {
	for _, g := range models.AllMuscleGroups {
		if thisWeek[g] == 0 {
			return g
		}
	}
	least := models.AllMuscleGroups[0]
	for _, g := range models.AllMuscleGroups[1:] {
		if thisWeek[g] < thisWeek[least] {
			least = g
		}
	}
	return least
}

// MonthlySessionCount counts sessions dated in the current calendar
// month. This is the goal projector's input, distinct from the rolling
// week used by SessionsCount.
func MonthlySessionCount(history []models.WorkoutSession, now time.Time) int {
	count := 0
	for _, w := range history {
		if w.Date.Year() == now.Year() && w.Date.Month() == now.Month() {
			count++
		}
	}
	return count
}

// inWindow reports start <= t <= end.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// groupOf returns the entry's canonical group, normalizing defensively:
// history snapshots are untrusted input even post-storage.
func groupOf(e models.ExerciseEntry) models.MuscleGroup {
	if models.IsValidMuscleGroup(string(e.MuscleGroup)) {
		return e.MuscleGroup
	}
	return models.NormalizeMuscleGroup(string(e.MuscleGroup))
}
