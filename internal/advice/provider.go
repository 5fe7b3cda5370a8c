// ABOUTME: Coach advice provider built over a pluggable text completer.
// ABOUTME: Remote failures always degrade to deterministic built-in advice.
package advice

import (
	"context"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// ACWRContext carries the fatigue numbers an advice request is about.
type ACWRContext struct {
	ACWR          float64
	RiskLabel     string
	AcuteVolume   float64
	ChronicVolume float64
}

// VolumeContext summarizes the current training week.
type VolumeContext struct {
	TotalVolume     float64
	PrevWeekVolume  float64
	NeglectedMuscle models.MuscleGroup
	Streak          int
}

// TargetContext compares current weekly volume against the goal.
type TargetContext struct {
	TotalVolume     float64
	TargetVolume    float64
	MonthlySessions int
}

// Provider produces short coaching texts. Implementations must never
// fail the caller for advisory content: when generation is impossible
// they return fallback text and a nil error.
type Provider interface {
	ACWRAdvice(ctx context.Context, a ACWRContext) (string, error)
	VolumeInsight(ctx context.Context, v VolumeContext) (string, error)
	TargetVolume(ctx context.Context, t TargetContext) (string, error)
}

// Completer generates a text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service is the default Provider. With a nil completer it serves the
// built-in fallback texts only.
type Service struct {
	completer Completer
}

// NewService builds a Service. completer may be nil.
func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// ACWRAdvice returns workload-ratio coaching text.
func (s *Service) ACWRAdvice(ctx context.Context, a ACWRContext) (string, error) {
	prompt := fmt.Sprintf(
		"You are a strength coach. The athlete's acute:chronic workload ratio is %.2f (%s). "+
			"Acute weekly volume %.0f, chronic weekly average %.0f. "+
			"Give one short, actionable recommendation (max 2 sentences).",
		a.ACWR, a.RiskLabel, a.AcuteVolume, a.ChronicVolume)
	return s.complete(ctx, prompt, fallbackACWR(a))
}

// VolumeInsight returns a comment on this week's training volume.
func (s *Service) VolumeInsight(ctx context.Context, v VolumeContext) (string, error) {
	prompt := fmt.Sprintf(
		"You are a strength coach. This week's volume is %.0f (last week %.0f). "+
			"Least trained muscle group: %s. Current streak: %d days. "+
			"Give one short, encouraging insight (max 2 sentences).",
		v.TotalVolume, v.PrevWeekVolume, v.NeglectedMuscle, v.Streak)
	return s.complete(ctx, prompt, fallbackVolume(v))
}

// TargetVolume returns guidance toward the weekly volume goal.
func (s *Service) TargetVolume(ctx context.Context, t TargetContext) (string, error) {
	prompt := fmt.Sprintf(
		"You are a strength coach. Weekly volume is %.0f against a target of %.0f, "+
			"with %d sessions this month. "+
			"Give one short suggestion to close the gap (max 2 sentences).",
		t.TotalVolume, t.TargetVolume, t.MonthlySessions)
	return s.complete(ctx, prompt, fallbackTarget(t))
}

// complete runs the prompt through the completer, degrading to the
// fallback on any failure or empty response.
func (s *Service) complete(ctx context.Context, prompt, fallback string) (string, error) {
	if s.completer == nil {
		return fallback, nil
	}
	text, err := s.completer.Complete(ctx, prompt)
	if err != nil || text == "" {
		return fallback, nil
	}
	return text, nil
}
