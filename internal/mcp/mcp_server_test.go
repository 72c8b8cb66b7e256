package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lodlab/chartbench/internal/contract"
	mcp_internal "github.com/lodlab/chartbench/internal/mcp"
	"github.com/lodlab/chartbench/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Profile:      schema.WalkProfile,
		Scenario:     schema.PanScenario,
		NumSeries:    2,
		NumPoints:    200,
		Seed:         42,
		LOD:          1,
		Steps:        4,
		Workers:      1,
		DisplayWidth: 100,
		Latency:      0,
	}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := testConfig()

	// A nil manager is fine here; validation fails before any persistence
	var mgr contract.RunManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("query_range missing start", func(t *testing.T) {
		tool := s.GetTool("query_range")
		require.NotNil(t, tool, "Tool query_range should exist")

		req := callRequest("query_range", map[string]any{
			"end": 100.0, // start missing
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid query parameters")
	})

	t.Run("query_range invalid lod", func(t *testing.T) {
		tool := s.GetTool("query_range")
		require.NotNil(t, tool)

		req := callRequest("query_range", map[string]any{
			"start": 0.0,
			"end":   100.0,
			"lod":   -2.0, // Invalid
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "lod must be a positive finite number")
	})

	t.Run("generate_series invalid profile", func(t *testing.T) {
		tool := s.GetTool("generate_series")
		require.NotNil(t, tool)

		req := callRequest("generate_series", map[string]any{
			"profile": "sawtooth", // Invalid
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid profile")
	})

	t.Run("run_benchmark invalid scenario", func(t *testing.T) {
		tool := s.GetTool("run_benchmark")
		require.NotNil(t, tool)

		req := callRequest("run_benchmark", map[string]any{
			"scenario": "teleport", // Invalid
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid scenario")
	})

	t.Run("run_benchmark sparsepan needs sparse profile", func(t *testing.T) {
		tool := s.GetTool("run_benchmark")
		require.NotNil(t, tool)

		req := callRequest("run_benchmark", map[string]any{
			"scenario": "sparsepan",
			"profile":  "walk", // Dense profile
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "requires a timestamped profile")
	})
}

func TestMCPServerHandlers_Results(t *testing.T) {
	baseCfg := testConfig()

	var mgr contract.RunManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("generate_series", func(t *testing.T) {
		tool := s.GetTool("generate_series")
		require.NotNil(t, tool)

		req := callRequest("generate_series", map[string]any{
			"profile": "sine",
			"series":  3.0,
			"points":  100.0,
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result schema.GenerateResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Equal(t, schema.SineProfile, result.Profile)
		assert.Equal(t, 3, result.NumSeries)
		assert.Equal(t, 100, result.NumPoints)
		assert.Len(t, result.Stats, 3)
	})

	t.Run("query_range raw", func(t *testing.T) {
		tool := s.GetTool("query_range")
		require.NotNil(t, tool)

		req := callRequest("query_range", map[string]any{
			"start": 10.0,
			"end":   20.0,
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result schema.QueryResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Equal(t, schema.RawKind, result.Kind)
		assert.Len(t, result.Series, 2)
		assert.Len(t, result.Series[0], 10)
	})

	t.Run("query_range aggregated", func(t *testing.T) {
		tool := s.GetTool("query_range")
		require.NotNil(t, tool)

		req := callRequest("query_range", map[string]any{
			"start": 0.0,
			"end":   100.0,
			"lod":   10.0,
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result schema.QueryResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Equal(t, schema.AggregatedKind, result.Kind)
		assert.Equal(t, 10, result.BinCount())
	})

	t.Run("run_benchmark", func(t *testing.T) {
		tool := s.GetTool("run_benchmark")
		require.NotNil(t, tool)

		req := callRequest("run_benchmark", map[string]any{
			"scenario": "pan",
			"steps":    4.0,
		})

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result schema.BenchResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Equal(t, schema.PanScenario, result.Scenario)
		assert.Len(t, result.Points, 4)
		assert.Equal(t, 4, result.Totals.Queries)
	})

	t.Run("list_profiles", func(t *testing.T) {
		tool := s.GetTool("list_profiles")
		require.NotNil(t, tool)

		req := callRequest("list_profiles", nil)

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var model schema.ProfilesRenderModel
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &model))
		assert.Len(t, model.Profiles, 5)
	})
}
