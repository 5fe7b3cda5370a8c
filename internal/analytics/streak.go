// ABOUTME: Consecutive-day training streak calculation.
// ABOUTME: Counts distinct local calendar days anchored to today or yesterday.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// Streak returns the number of consecutive calendar days with at least
// one logged session, ending today or yesterday. A most-recent session
// older than yesterday breaks the streak to 0.
func Streak(history []models.WorkoutSession, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, w := range history {
		d := dateOnly(w.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if daysApart(days[0], dateOnly(now)) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysApart(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// dateOnly truncates to local midnight.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysApart returns the calendar days between two local midnights.
// Rounded, since DST shifts make some local days 23 or 25 hours long.
func daysApart(earlier, later time.Time) int {
	return int(math.Round(later.Sub(earlier).Hours() / 24))
}
