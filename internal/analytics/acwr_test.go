// ABOUTME: Tests for the acute:chronic workload ratio and its risk bands.
// ABOUTME: Covers zero-guard, band boundaries, and rounding.
package analytics

import (
	"testing"
	"time"

	"github.com/harperreed/lift/internal/models"
)

func vol(daysAgo int, volume float64) models.WorkoutSession {
	return models.WorkoutSession{
		Date:   testNow.AddDate(0, 0, -daysAgo),
		Volume: volume,
	}
}

func TestComputeACWRNoHistory(t *testing.T) {
	res := ComputeACWR(nil, testNow)
	if res.ACWR != 0 {
		t.Errorf("ACWR = %v, want 0", res.ACWR)
	}
	if RiskLabel(res.ACWR) != RiskNoData {
		t.Errorf("label = %q, want %q", RiskLabel(res.ACWR), RiskNoData)
	}
}

func TestComputeACWRBalancedLoad(t *testing.T) {
	// Same daily load across both windows gives a ratio of exactly 1.
	var history []models.WorkoutSession
	for d := 1; d <= 28; d++ {
		history = append(history, vol(d, 1000))
	}
	res := ComputeACWR(history, testNow)
	if res.ACWR != 1 {
		t.Errorf("ACWR = %v, want 1", res.ACWR)
	}
	if res.AcuteVolume != 7000 {
		t.Errorf("AcuteVolume = %v, want 7000", res.AcuteVolume)
	}
}

func TestComputeACWRSpikeDetection(t *testing.T) {
	// All load concentrated in the acute window drives the ratio to 4:
	// acute/7 over the same total /28.
	history := []models.WorkoutSession{
		vol(0, 3500),
		vol(2, 3500),
	}
	res := ComputeACWR(history, testNow)
	if res.ACWR != 4 {
		t.Errorf("ACWR = %v, want 4", res.ACWR)
	}
	if RiskLabel(res.ACWR) != RiskDanger {
		t.Errorf("label = %q, want %q", RiskLabel(res.ACWR), RiskDanger)
	}
}

func TestComputeACWRZeroVolumeSessionsIgnored(t *testing.T) {
	history := []models.WorkoutSession{
		vol(1, 0),
		vol(20, 0),
	}
	res := ComputeACWR(history, testNow)
	if res.ACWR != 0 || res.ChronicVolume != 0 {
		t.Errorf("got %+v, want all zeroes", res)
	}
}

func TestComputeACWROldSessionsOutsideWindow(t *testing.T) {
	history := []models.WorkoutSession{vol(29, 5000)}
	res := ComputeACWR(history, testNow)
	if res.ChronicVolume != 0 {
		t.Errorf("ChronicVolume = %v, want 0 for a 29-day-old session", res.ChronicVolume)
	}
}

func TestComputeACWRRounding(t *testing.T) {
	// acute daily = 1000/7, chronic daily = 3000/28: ratio 1.333... -> 1.33.
	history := []models.WorkoutSession{
		vol(1, 1000),
		vol(10, 1000),
		vol(20, 1000),
	}
	res := ComputeACWR(history, testNow)
	if res.ACWR != 1.33 {
		t.Errorf("ACWR = %v, want 1.33", res.ACWR)
	}
}

func TestRiskLabelBands(t *testing.T) {
	tests := []struct {
		acwr float64
		want string
	}{
		{0, RiskNoData},
		{0.5, RiskUndertraining},
		{0.79, RiskUndertraining},
		{0.8, RiskOptimal},
		{1.0, RiskOptimal},
		{1.3, RiskOptimal},
		{1.31, RiskOverreaching},
		{1.5, RiskOverreaching},
		{1.51, RiskDanger},
		{2.4, RiskDanger},
	}
	for _, tt := range tests {
		if got := RiskLabel(tt.acwr); got != tt.want {
			t.Errorf("RiskLabel(%v) = %q, want %q", tt.acwr, got, tt.want)
		}
	}
}

func TestComputeACWRUsesStoredVolume(t *testing.T) {
	// Summary-only records (no sets) still feed the load windows.
	w := models.WorkoutSession{Date: testNow.Add(-24 * time.Hour), Volume: 2100}
	res := ComputeACWR([]models.WorkoutSession{w}, testNow)
	if res.AcuteVolume != 2100 {
		t.Errorf("AcuteVolume = %v, want 2100", res.AcuteVolume)
	}
}
