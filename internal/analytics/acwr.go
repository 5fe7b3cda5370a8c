// ABOUTME: Acute:chronic workload ratio calculation and risk banding.
// ABOUTME: 7-day vs 28-day daily-average volume; zero chronic load yields 0, never NaN.
package analytics

import (
	"math"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// ACWRResult holds the workload ratio and the window sums behind it.
type ACWRResult struct {
	ACWR          float64 `json:"acwr"`
	AcuteVolume   float64 `json:"acute_volume"`
	ChronicVolume float64 `json:"chronic_volume"`
}

// Risk band labels, driven directly by the ratio. These edges are
// user-facing messaging; keep them exact.
const (
	RiskNoData        = "No data"
	RiskDanger        = "Danger"
	RiskOverreaching  = "Overreaching"
	RiskUndertraining = "Undertraining"
	RiskOptimal       = "Optimal"
)

// ComputeACWR sums session volume over the trailing 7 and 28 days and
// returns the ratio of their daily averages, rounded to two decimals.
// A zero chronic load is guarded: the ratio is 0, not NaN or Inf.
func ComputeACWR(history []models.WorkoutSession, now time.Time) ACWRResult {
	acuteStart := now.AddDate(0, 0, -7)
	chronicStart := now.AddDate(0, 0, -28)

	var result ACWRResult
	for _, w := range history {
		if w.Volume <= 0 {
			continue
		}
		if !w.Date.Before(chronicStart) {
			result.ChronicVolume += w.Volume
		}
		if !w.Date.Before(acuteStart) {
			result.AcuteVolume += w.Volume
		}
	}

	dailyAcute := result.AcuteVolume / 7
	dailyChronic := result.ChronicVolume / 28
	if dailyChronic > 0 {
		result.ACWR = round2(dailyAcute / dailyChronic)
	}
	return result
}

// RiskLabel classifies an ACWR value into its risk band.
func RiskLabel(acwr float64) string {
	switch {
	case acwr == 0:
		return RiskNoData
	case acwr > 1.5:
		return RiskDanger
	case acwr > 1.3:
		return RiskOverreaching
	case acwr < 0.8:
		return RiskUndertraining
	default:
		return RiskOptimal
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
