// ABOUTME: Deterministic fallback coaching texts.
// ABOUTME: Used whenever the completion endpoint is unset, failing, or empty.
package advice

import (
	"fmt"

	"github.com/harperreed/lift/internal/analytics"
)

func fallbackACWR(a ACWRContext) string {
	switch a.RiskLabel {
	case analytics.RiskNoData:
		return "Not enough training history yet. Log a few sessions and the workload ratio will start tracking your fatigue."
	case analytics.RiskDanger:
		return fmt.Sprintf("Your workload ratio is %.2f, well above the safe range. Cut this week's volume back and prioritize recovery.", a.ACWR)
	case analytics.RiskOverreaching:
		return fmt.Sprintf("Your workload ratio is %.2f, trending high. Hold volume steady rather than adding more this week.", a.ACWR)
	case analytics.RiskUndertraining:
		return fmt.Sprintf("Your workload ratio is %.2f, below your recent baseline. You have room to add a session or some extra sets.", a.ACWR)
	default:
		return fmt.Sprintf("Your workload ratio is %.2f, right in the optimal range. Keep this load and progress gradually.", a.ACWR)
	}
}

func fallbackVolume(v VolumeContext) string {
	msg := fmt.Sprintf("You moved %.0f this week", v.TotalVolume)
	switch {
	case v.PrevWeekVolume <= 0 && v.TotalVolume <= 0:
		return "No volume logged yet this week. A single session gets the wheel turning."
	case v.PrevWeekVolume <= 0:
		msg += ", a fresh start after a quiet week."
	case v.TotalVolume > v.PrevWeekVolume:
		msg += fmt.Sprintf(", up from %.0f last week.", v.PrevWeekVolume)
	case v.TotalVolume < v.PrevWeekVolume:
		msg += fmt.Sprintf(", down from %.0f last week.", v.PrevWeekVolume)
	default:
		msg += ", matching last week."
	}
	if v.NeglectedMuscle != "" {
		msg += fmt.Sprintf(" %s could use some attention.", v.NeglectedMuscle)
	}
	if v.Streak > 1 {
		msg += fmt.Sprintf(" %d-day streak, keep it alive.", v.Streak)
	}
	return msg
}

func fallbackTarget(t TargetContext) string {
	if t.TargetVolume <= 0 {
		return "No weekly volume target set. Set one with the goals command to get pacing advice."
	}
	if t.TotalVolume >= t.TargetVolume {
		return fmt.Sprintf("Weekly target hit: %.0f of %.0f. Anything extra now is a bonus.", t.TotalVolume, t.TargetVolume)
	}
	remaining := t.TargetVolume - t.TotalVolume
	return fmt.Sprintf("You are %.0f short of this week's %.0f target. One focused session should close the gap.", remaining, t.TargetVolume)
}
