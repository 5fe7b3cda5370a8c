// ABOUTME: GoalSettings model and goal-type tags for progress tracking.
// ABOUTME: Provides defaults used whenever no settings have been saved.
package models

// GoalType tags one of the three tracked goal metrics.
type GoalType string

const (
	GoalSessions GoalType = "sessions"
	GoalPRs      GoalType = "prs"
	GoalVolume   GoalType = "volume"
)

// AllGoalTypes returns the goal types in their fixed display order.
var AllGoalTypes = []GoalType{GoalSessions, GoalPRs, GoalVolume}

// IsValidGoalType checks if a string is a known goal type.
func IsValidGoalType(s string) bool {
	for _, g := range AllGoalTypes {
		if string(g) == s {
			return true
		}
	}
	return false
}

// GoalSettings holds the user's numeric targets. ActiveGoals controls
// which progress metrics are surfaced; it never affects computation.
type GoalSettings struct {
	TargetSessionsPerMonth float64    `json:"target_sessions_per_month"`
	TargetVolumePerWeek    float64    `json:"target_volume_per_week"`
	TargetPRsPerMonth      float64    `json:"target_prs_per_month"`
	ActiveGoals            []GoalType `json:"active_goals"`
}

// DefaultGoalSettings returns the targets used when nothing is saved.
func DefaultGoalSettings() GoalSettings {
	return GoalSettings{
		TargetSessionsPerMonth: 12,
		TargetVolumePerWeek:    15000,
		TargetPRsPerMonth:      5,
		ActiveGoals:            []GoalType{GoalSessions, GoalPRs, GoalVolume},
	}
}

// IsActive reports whether the given goal type is surfaced.
func (g GoalSettings) IsActive(t GoalType) bool {
	for _, a := range g.ActiveGoals {
		if a == t {
			return true
		}
	}
	return false
}
