// ABOUTME: MCP resource implementations for workout analytics.
// ABOUTME: Provides lift://dashboard, lift://recent, and lift://prs resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/analytics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// lift://dashboard - Full weekly analytics snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://dashboard",
		Name:        "Weekly Dashboard",
		Description: "Weekly volume, muscle distribution, streak, ACWR, and goal progress",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// lift://recent - Last 10 sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://recent",
		Name:        "Recent Sessions",
		Description: "Last 10 workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// lift://prs - Full personal record history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://prs",
		Name:        "Personal Records",
		Description: "All personal records in chronological order",
		MIMEType:    "application/json",
	}, s.handlePRsResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	gs, err := s.repo.LoadGoalSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	now := time.Now()
	stats := analytics.ComputeWeeklyStats(history, now)
	acwr := analytics.ComputeACWR(history, now)
	progress := analytics.ComputeGoalProgress(stats, gs)

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"week":         stats,
		"acwr": map[string]interface{}{
			"value":          acwr.ACWR,
			"acute_volume":   acwr.AcuteVolume,
			"chronic_volume": acwr.ChronicVolume,
			"risk":           analytics.RiskLabel(acwr.ACWR),
		},
		"goals": map[string]interface{}{
			"progress": progress,
			"global":   analytics.GlobalProgress(progress),
		},
	}

	return jsonResource("lift://dashboard", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return jsonResource("lift://recent", map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (s *Server) handlePRsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.repo.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	prs := analytics.ExtractPRs(history)
	return jsonResource("lift://prs", map[string]interface{}{
		"records": prs,
		"count":   len(prs),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
