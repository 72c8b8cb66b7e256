package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/lodlab/chartbench/core"
	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

// applyGenerationArgs copies the generation arguments shared by every tool
// into the config clone.
func applyGenerationArgs(cfg *contract.Config, request mcp.CallToolRequest) error {
	if p := request.GetString("profile", ""); p != "" {
		cfg.Profile = schema.Profile(p)
	}
	if s := request.GetInt("series", 0); s > 0 {
		cfg.NumSeries = s
	}
	if p := request.GetInt("points", 0); p > 0 {
		cfg.NumPoints = p
	}
	if seed := request.GetInt("seed", 0); seed != 0 {
		cfg.Seed = int64(seed)
	}

	if _, ok := schema.ValidProfiles[cfg.Profile]; !ok {
		return fmt.Errorf("invalid profile '%s'. must be one of walk, sine, pulse, gradient, sparse", cfg.Profile)
	}
	return nil
}

func (h *toolHandler) handleGenerateSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyGenerationArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid generation parameters: %v", err)), nil
	}

	result, err := core.GetGenerateResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleQueryRange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyGenerationArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid query parameters: %v", err)), nil
	}

	start, err := request.RequireFloat("start")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid query parameters: %v", err)), nil
	}
	end, err := request.RequireFloat("end")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid query parameters: %v", err)), nil
	}
	cfg.RangeStart = start
	cfg.RangeEnd = end
	cfg.LOD = request.GetFloat("lod", cfg.LOD)
	cfg.SampleRate = request.GetFloat("sample_rate", cfg.SampleRate)

	if cfg.LOD <= 0 || math.IsInf(cfg.LOD, 0) || math.IsNaN(cfg.LOD) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid query parameters: lod must be a positive finite number (received %v)", cfg.LOD)), nil
	}
	if cfg.SampleRate < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid query parameters: sample_rate cannot be negative (received %v)", cfg.SampleRate)), nil
	}

	result, err := core.GetQueryResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRunBenchmark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyGenerationArgs(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid benchmark parameters: %v", err)), nil
	}

	if s := request.GetString("scenario", ""); s != "" {
		cfg.Scenario = schema.Scenario(s)
	}
	if steps := request.GetInt("steps", 0); steps > 0 {
		cfg.Steps = steps
	}
	if w := request.GetInt("workers", 0); w > 0 {
		cfg.Workers = w
	}

	if _, ok := schema.ValidScenarios[cfg.Scenario]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid benchmark parameters: invalid scenario '%s'. must be pan, zoom, mixed, sparsepan", cfg.Scenario)), nil
	}
	if _, ok := schema.SparseProfiles[cfg.Profile]; cfg.Scenario == schema.SparsePanScenario && !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid benchmark parameters: scenario %s requires a timestamped profile such as %s", schema.SparsePanScenario, schema.SparseProfile)), nil
	}

	result, err := core.GetBenchResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("benchmark failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListProfiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	model := core.BuildProfilesModel()
	jsonData, _ := json.MarshalIndent(model, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
