package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ashleypule/soccer-score/pkg/common"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/services"
)

type PredictMatchArgs struct {
	FixtureID  int    `json:"fixture_id" jsonschema:"football-data.org match id"`
	HomeTeam   string `json:"home_team" jsonschema:"Home team name"`
	AwayTeam   string `json:"away_team" jsonschema:"Away team name"`
	HomeTeamID int    `json:"home_team_id,omitempty" jsonschema:"Home team id (0 = use generated statistics)"`
	AwayTeamID int    `json:"away_team_id,omitempty" jsonschema:"Away team id (0 = use generated statistics)"`
}

type ListMatchesArgs struct {
	DaysBack    int    `json:"days_back,omitempty" jsonschema:"Days of results to include (default 7)"`
	DaysForward int    `json:"days_forward,omitempty" jsonschema:"Days of fixtures to include"`
	League      string `json:"league,omitempty" jsonschema:"League id, code (e.g. PL) or name"`
	Status      string `json:"status,omitempty" jsonschema:"scheduled, ongoing or finished"`
}

type FindHighlightArgs struct {
	HomeTeam string `json:"home_team" jsonschema:"Home team name"`
	AwayTeam string `json:"away_team" jsonschema:"Away team name"`
}

type matchLister interface {
	Matches(ctx context.Context, q services.MatchQuery) (*services.MatchList, error)
}

type predictor interface {
	Generate(ctx context.Context, req services.PredictionRequest) (*models.MatchPrediction, error)
}

type highlightFinder interface {
	FindForMatch(ctx context.Context, homeTeam, awayTeam string) services.HighlightMatch
}

type tools struct {
	matches     matchLister
	predictions predictor
	highlights  highlightFinder
}

func (t *tools) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "predict_match",
		Description: "Predicts winner, scoreline, BTTS, over/under 2.5, corners, bookings and a combo for a fixture",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PredictMatchArgs) (*mcp.CallToolResult, any, error) {
		return t.predictMatch(ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_matches",
		Description: "Lists matches across supported competitions, most recent first",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListMatchesArgs) (*mcp.CallToolResult, any, error) {
		return t.listMatches(ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_highlight",
		Description: "Finds a highlight video for a match by team names",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args FindHighlightArgs) (*mcp.CallToolResult, any, error) {
		return t.findHighlight(ctx, args), nil, nil
	})
}

func (t *tools) predictMatch(ctx context.Context, args PredictMatchArgs) *mcp.CallToolResult {
	if args.HomeTeam == "" || args.AwayTeam == "" {
		return toolError(fmt.Errorf("%w: home_team and away_team are required", common.ErrInvalidInput))
	}

	p, err := t.predictions.Generate(ctx, services.PredictionRequest{
		FixtureID:  args.FixtureID,
		HomeTeam:   args.HomeTeam,
		AwayTeam:   args.AwayTeam,
		HomeTeamID: args.HomeTeamID,
		AwayTeamID: args.AwayTeamID,
	})
	if err != nil {
		if rl, ok := common.AsRateLimit(err); ok {
			return toolError(errors.New(rl.UserMessage()))
		}
		return toolError(err)
	}
	return toolJSON(p)
}

func (t *tools) listMatches(ctx context.Context, args ListMatchesArgs) *mcp.CallToolResult {
	q := services.MatchQuery{
		DaysBack:    args.DaysBack,
		DaysForward: args.DaysForward,
		League:      args.League,
	}
	if q.DaysBack <= 0 {
		q.DaysBack = 7
	}
	if args.Status != "" {
		status, ok := models.ParseMatchStatus(args.Status)
		if !ok {
			return toolError(fmt.Errorf("%w: unknown status %q", common.ErrInvalidInput, args.Status))
		}
		q.Status = status
	}

	list, err := t.matches.Matches(ctx, q)
	if err != nil {
		return toolError(err)
	}
	return toolJSON(map[string]any{
		"date_from": list.DateFrom,
		"date_to":   list.DateTo,
		"count":     len(list.Matches),
		"matches":   list.Matches,
	})
}

func (t *tools) findHighlight(ctx context.Context, args FindHighlightArgs) *mcp.CallToolResult {
	if args.HomeTeam == "" && args.AwayTeam == "" {
		return toolError(fmt.Errorf("%w: home_team or away_team is required", common.ErrInvalidInput))
	}
	return toolJSON(t.highlights.FindForMatch(ctx, args.HomeTeam, args.AwayTeam))
}

func toolJSON(v any) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
