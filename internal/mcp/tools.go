// ABOUTME: MCP tool implementations for workout tracking and analytics.
// ABOUTME: Covers logging, history queries, weekly stats, fatigue, PRs, goals, and coach advice.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/advice"
	"github.com/harperreed/lift/internal/analytics"
	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a completed workout session with exercises and sets",
	}, s.handleLogWorkout)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recent workout sessions, newest first",
	}, s.handleListSessions)

	// get_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get a workout session by ID or ID prefix",
	}, s.handleGetSession)

	// weekly_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_stats",
		Description: "Weekly volume, muscle distribution with trends, streak, and recent PRs",
	}, s.handleWeeklyStats)

	// get_acwr
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_acwr",
		Description: "Acute:chronic workload ratio with its injury-risk band",
	}, s.handleGetACWR)

	// get_prs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "Personal records extracted from the full session history",
	}, s.handleGetPRs)

	// goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goal_progress",
		Description: "Progress toward active monthly and weekly goals",
	}, s.handleGoalProgress)

	// set_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goals",
		Description: "Update goal targets and which goals are active",
	}, s.handleSetGoals)

	// coach_advice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "coach_advice",
		Description: "Short coaching text about fatigue, volume, or the weekly target",
	}, s.handleCoachAdvice)
}

// Tool input/output types

type setInput struct {
	Weight    float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps      int     `json:"reps" jsonschema:"Repetitions performed"`
	Completed *bool   `json:"completed,omitempty" jsonschema:"Whether the set was completed (default true)"`
}

type exerciseInput struct {
	Name        string     `json:"name" jsonschema:"Exercise name"`
	MuscleGroup string     `json:"muscle_group,omitempty" jsonschema:"Muscle group (Chest, Back, Legs, Shoulders, Arms, Core)"`
	Sets        []setInput `json:"sets,omitempty" jsonschema:"Sets performed"`
}

type logWorkoutInput struct {
	Date      string          `json:"date,omitempty" jsonschema:"Session timestamp (ISO 8601), defaults to now"`
	Exercises []exerciseInput `json:"exercises,omitempty" jsonschema:"Exercises performed"`
	Volume    float64         `json:"volume,omitempty" jsonschema:"Total volume for summary-only sessions without sets"`
	Notes     string          `json:"notes,omitempty" jsonschema:"Optional session notes"`
}

type sessionOutput struct {
	ID      string  `json:"id"`
	Volume  float64 `json:"volume"`
	Message string  `json:"message"`
}

type listSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getSessionInput struct {
	ID string `json:"id" jsonschema:"Session ID or prefix"`
}

type emptyInput struct{}

type setGoalsInput struct {
	TargetSessionsPerMonth *float64 `json:"target_sessions_per_month,omitempty" jsonschema:"Monthly session target"`
	TargetVolumePerWeek    *float64 `json:"target_volume_per_week,omitempty" jsonschema:"Weekly volume target"`
	TargetPRsPerMonth      *float64 `json:"target_prs_per_month,omitempty" jsonschema:"Monthly PR target"`
	ActiveGoals            []string `json:"active_goals,omitempty" jsonschema:"Active goal types (sessions, prs, volume)"`
}

type coachAdviceInput struct {
	Topic string `json:"topic,omitempty" jsonschema:"Advice topic: fatigue (default), volume, or target"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, sessionOutput, error) {
	w := models.NewWorkoutSession()

	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02", input.Date)
		}
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		w.WithDate(t)
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	for _, ex := range input.Exercises {
		entry := models.ExerciseEntry{
			Name:        ex.Name,
			MuscleGroup: models.NormalizeMuscleGroup(ex.MuscleGroup),
		}
		for _, set := range ex.Sets {
			completed := true
			if set.Completed != nil {
				completed = *set.Completed
			}
			entry.Sets = append(entry.Sets, models.Set{
				Weight:    set.Weight,
				Reps:      set.Reps,
				Completed: completed,
			})
		}
		w.AddEntry(entry)
	}

	if len(input.Exercises) == 0 {
		w.Volume = input.Volume
	}

	if err := s.repo.AppendSession(w); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, sessionOutput{
		ID:      w.ID.String()[:8],
		Volume:  w.Volume,
		Message: fmt.Sprintf("Logged workout with volume %.0f (ID: %s)", w.Volume, w.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	sessions, err := s.repo.ListSessions(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	return nil, sessions, nil
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input getSessionInput) (*mcp.CallToolResult, any, error) {
	w, err := s.repo.GetSession(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %s", input.ID)
	}
	return nil, w, nil
}

func (s *Server) handleWeeklyStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	return nil, analytics.ComputeWeeklyStats(history, time.Now()), nil
}

func (s *Server) handleGetACWR(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	res := analytics.ComputeACWR(history, time.Now())
	return nil, map[string]interface{}{
		"acwr":           res.ACWR,
		"acute_volume":   res.AcuteVolume,
		"chronic_volume": res.ChronicVolume,
		"risk":           analytics.RiskLabel(res.ACWR),
	}, nil
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	prs := analytics.ExtractPRs(history)
	if len(prs) == 0 {
		return nil, map[string]interface{}{"message": "No personal records yet."}, nil
	}
	return nil, prs, nil
}

func (s *Server) handleGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	gs, err := s.repo.LoadGoalSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load goals: %w", err)
	}

	stats := analytics.ComputeWeeklyStats(history, time.Now())
	progress := analytics.ComputeGoalProgress(stats, gs)
	return nil, map[string]interface{}{
		"goals":           progress,
		"global_progress": analytics.GlobalProgress(progress),
	}, nil
}

func (s *Server) handleSetGoals(ctx context.Context, req *mcp.CallToolRequest, input setGoalsInput) (*mcp.CallToolResult, simpleOutput, error) {
	gs, err := s.repo.LoadGoalSettings()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load goals: %w", err)
	}

	if input.TargetSessionsPerMonth != nil {
		gs.TargetSessionsPerMonth = *input.TargetSessionsPerMonth
	}
	if input.TargetVolumePerWeek != nil {
		gs.TargetVolumePerWeek = *input.TargetVolumePerWeek
	}
	if input.TargetPRsPerMonth != nil {
		gs.TargetPRsPerMonth = *input.TargetPRsPerMonth
	}
	if input.ActiveGoals != nil {
		var active []models.GoalType
		for _, g := range input.ActiveGoals {
			if !models.IsValidGoalType(g) {
				return nil, simpleOutput{}, fmt.Errorf("unknown goal type: %s", g)
			}
			active = append(active, models.GoalType(g))
		}
		gs.ActiveGoals = active
	}

	if err := s.repo.SaveGoalSettings(gs); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save goals: %w", err)
	}

	return nil, simpleOutput{Message: "Goals updated."}, nil
}

func (s *Server) handleCoachAdvice(ctx context.Context, req *mcp.CallToolRequest, input coachAdviceInput) (*mcp.CallToolResult, simpleOutput, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	now := time.Now()
	var text string

	switch input.Topic {
	case "", "fatigue":
		res := analytics.ComputeACWR(history, now)
		text, err = s.coach.ACWRAdvice(ctx, advice.ACWRContext{
			ACWR:          res.ACWR,
			RiskLabel:     analytics.RiskLabel(res.ACWR),
			AcuteVolume:   res.AcuteVolume,
			ChronicVolume: res.ChronicVolume,
		})
	case "volume":
		stats := analytics.ComputeWeeklyStats(history, now)
		text, err = s.coach.VolumeInsight(ctx, advice.VolumeContext{
			TotalVolume:     stats.TotalVolume,
			PrevWeekVolume:  stats.PrevWeekVolume,
			NeglectedMuscle: stats.NeglectedMuscle,
			Streak:          stats.Streak,
		})
	case "target":
		stats := analytics.ComputeWeeklyStats(history, now)
		gs, gerr := s.repo.LoadGoalSettings()
		if gerr != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to load goals: %w", gerr)
		}
		text, err = s.coach.TargetVolume(ctx, advice.TargetContext{
			TotalVolume:     stats.TotalVolume,
			TargetVolume:    gs.TargetVolumePerWeek,
			MonthlySessions: stats.MonthlySessions,
		})
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown topic: %s (want fatigue, volume, or target)", input.Topic)
	}
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to generate advice: %w", err)
	}

	return nil, simpleOutput{Message: text}, nil
}
