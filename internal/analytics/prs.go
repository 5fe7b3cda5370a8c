// ABOUTME: Personal-record extraction via chronological history replay.
// ABOUTME: A PR is a strict improvement on the max completed-set weight per exercise.
package analytics

import (
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// PRRecord is one detected personal record: a new maximum lifted
// weight for an exercise relative to all prior history.
type PRRecord struct {
	ExerciseName string    `json:"exercise_name"`
	Weight       float64   `json:"weight"`
	Timestamp    time.Time `json:"timestamp"`
}

// ExtractPRs replays history in ascending date order and emits a
// record each time an exercise's max completed-set weight strictly
// exceeds its running maximum. Matching the previous max is not a PR,
// and zero never is. Records are returned in emission order, so per
// exercise the weights are strictly increasing.
func ExtractPRs(history []models.WorkoutSession) []PRRecord {
	ordered := make([]models.WorkoutSession, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	maxSoFar := make(map[string]float64)
	var records []PRRecord

	for _, w := range ordered {
		for _, e := range w.Exercises {
			best := e.MaxCompletedWeight()
			if best <= 0 {
				continue
			}
			key := prKey(e)
			if best > maxSoFar[key] {
				maxSoFar[key] = best
				records = append(records, PRRecord{
					ExerciseName: e.Name,
					Weight:       best,
					Timestamp:    w.Date,
				})
			}
		}
	}
	return records
}

// RecentPRs returns the latest n records, newest first.
func RecentPRs(history []models.WorkoutSession, n int) []PRRecord {
	records := ExtractPRs(history)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records
}

// MonthlyPRCount counts PR events in the current calendar month. The
// one true-PR definition is used everywhere; no widget approximates it
// by counting nonzero-volume sessions.
func MonthlyPRCount(history []models.WorkoutSession, now time.Time) int {
	count := 0
	for _, r := range ExtractPRs(history) {
		if r.Timestamp.Year() == now.Year() && r.Timestamp.Month() == now.Month() {
			count++
		}
	}
	return count
}

// prKey identifies an exercise across sessions: by library ID when the
// entry carries one, otherwise by denormalized name.
func prKey(e models.ExerciseEntry) string {
	if e.ExerciseID != "" {
		return e.ExerciseID
	}
	return e.Name
}
