// ABOUTME: Tests for fallback advice texts and the fallback-on-failure contract.
// ABOUTME: The provider must never surface an error for advisory content.
package advice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/lift/internal/analytics"
	"github.com/harperreed/lift/internal/models"
)

type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

type cannedCompleter struct{ text string }

func (c cannedCompleter) Complete(context.Context, string) (string, error) {
	return c.text, nil
}

func TestACWRAdviceFallbackPerBand(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		label string
		acwr  float64
		want  string
	}{
		{analytics.RiskNoData, 0, "Not enough training history"},
		{analytics.RiskDanger, 1.8, "1.80"},
		{analytics.RiskOverreaching, 1.4, "1.40"},
		{analytics.RiskUndertraining, 0.5, "0.50"},
		{analytics.RiskOptimal, 1.1, "optimal range"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := svc.ACWRAdvice(context.Background(), ACWRContext{ACWR: tt.acwr, RiskLabel: tt.label})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("advice %q missing %q", got, tt.want)
			}
		})
	}
}

func TestACWRAdviceDeterministic(t *testing.T) {
	svc := NewService(nil)
	a := ACWRContext{ACWR: 1.1, RiskLabel: analytics.RiskOptimal}
	first, _ := svc.ACWRAdvice(context.Background(), a)
	second, _ := svc.ACWRAdvice(context.Background(), a)
	if first != second {
		t.Errorf("fallback not deterministic: %q vs %q", first, second)
	}
}

func TestProviderSwallowsCompleterErrors(t *testing.T) {
	svc := NewService(failingCompleter{})

	got, err := svc.VolumeInsight(context.Background(), VolumeContext{
		TotalVolume:     5000,
		NeglectedMuscle: models.MuscleCore,
		Streak:          3,
	})
	if err != nil {
		t.Fatalf("error must be swallowed, got %v", err)
	}
	if !strings.Contains(got, "5000") || !strings.Contains(got, "Core") {
		t.Errorf("fallback %q missing interpolated context", got)
	}
}

func TestProviderUsesCompleterText(t *testing.T) {
	svc := NewService(cannedCompleter{text: "Push harder on Tuesdays."})
	got, err := svc.TargetVolume(context.Background(), TargetContext{TotalVolume: 100, TargetVolume: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Push harder on Tuesdays." {
		t.Errorf("got %q", got)
	}
}

func TestProviderEmptyCompletionFallsBack(t *testing.T) {
	svc := NewService(cannedCompleter{text: ""})
	got, _ := svc.TargetVolume(context.Background(), TargetContext{TotalVolume: 100, TargetVolume: 200})
	if !strings.Contains(got, "100 short") {
		t.Errorf("got %q, want remaining-volume fallback", got)
	}
}

func TestTargetFallbackStates(t *testing.T) {
	svc := NewService(nil)

	got, _ := svc.TargetVolume(context.Background(), TargetContext{TargetVolume: 0})
	if !strings.Contains(got, "No weekly volume target") {
		t.Errorf("zero target: %q", got)
	}

	got, _ = svc.TargetVolume(context.Background(), TargetContext{TotalVolume: 9000, TargetVolume: 8000})
	if !strings.Contains(got, "target hit") {
		t.Errorf("met target: %q", got)
	}
}
