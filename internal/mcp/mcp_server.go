// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the chartbench MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Chartbench Query Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: generate_series ---
	s.AddTool(mcp.NewTool("generate_series",
		mcp.WithDescription("Generate a deterministic synthetic series set and return per-series summary stats."),
		mcp.WithString("profile", mcp.Description("Generation profile (walk, sine, pulse, gradient, sparse). Defaults to 'walk'."), mcp.Enum("walk", "sine", "pulse", "gradient", "sparse")),
		mcp.WithNumber("series", mcp.Description("Number of series to generate.")),
		mcp.WithNumber("points", mcp.Description("Number of points per series.")),
		mcp.WithNumber("seed", mcp.Description("Generation seed. The same seed always yields the same data.")),
	), h.handleGenerateSeries)

	// --- 2. Tool: query_range ---
	s.AddTool(mcp.NewTool("query_range",
		mcp.WithDescription("Run a single level-of-detail range query against a generated series set."),
		mcp.WithNumber("start", mcp.Description("Start of the query range."), mcp.Required()),
		mcp.WithNumber("end", mcp.Description("End of the query range."), mcp.Required()),
		mcp.WithNumber("lod", mcp.Description("Level of detail: samples per bin. 1 returns raw data.")),
		mcp.WithString("profile", mcp.Description("Generation profile (walk, sine, pulse, gradient, sparse)."), mcp.Enum("walk", "sine", "pulse", "gradient", "sparse")),
		mcp.WithNumber("series", mcp.Description("Number of series to generate.")),
		mcp.WithNumber("points", mcp.Description("Number of points per series.")),
		mcp.WithNumber("seed", mcp.Description("Generation seed.")),
		mcp.WithNumber("sample_rate", mcp.Description("Sample rate hint for sparse aggregation decisions.")),
	), h.handleQueryRange)

	// --- 3. Tool: run_benchmark ---
	s.AddTool(mcp.NewTool("run_benchmark",
		mcp.WithDescription("Replay a viewport navigation scenario against the query engine and return per-step latency stats."),
		mcp.WithString("scenario", mcp.Description("Navigation scenario (pan, zoom, mixed, sparsepan)."), mcp.Enum("pan", "zoom", "mixed", "sparsepan")),
		mcp.WithString("profile", mcp.Description("Generation profile (walk, sine, pulse, gradient, sparse)."), mcp.Enum("walk", "sine", "pulse", "gradient", "sparse")),
		mcp.WithNumber("steps", mcp.Description("Number of navigation steps to replay.")),
		mcp.WithNumber("series", mcp.Description("Number of series to generate.")),
		mcp.WithNumber("points", mcp.Description("Number of points per series.")),
		mcp.WithNumber("seed", mcp.Description("Generation seed.")),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent query workers.")),
	), h.handleRunBenchmark)

	// --- 4. Tool: list_profiles ---
	s.AddTool(mcp.NewTool("list_profiles",
		mcp.WithDescription("List the available generation profiles and the query paths they stress."),
	), h.handleListProfiles)

	return s
}

// StartMCPServer starts the chartbench MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
