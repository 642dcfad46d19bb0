// Package tools exposes the chart-spec pipeline as MCP tools. The pipeline
// functions it wraps are independent of the registry and callable directly,
// so unit tests never need transport simulation.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"chartspec/internal/chartspec"
)

const (
	ServerName    = "chartspec"
	ServerVersion = "1.0.0"
)

// NewServer builds the MCP server with all chart tools registered.
func NewServer() *server.MCPServer {
	srv := server.NewMCPServer(ServerName, ServerVersion)

	registerCSVTool(srv)
	registerRecordsTool(srv)
	registerDataTool(srv)

	return srv
}

type chartToolConfig struct {
	name        string
	description string
}

// registerChartTool wires one typed builder into the server. Pipeline
// failures become tool error results, never protocol errors.
func registerChartTool[T any](
	srv *server.MCPServer,
	cfg chartToolConfig,
	build func(T) (*chartspec.ChartSpec, error),
) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args T
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		spec, err := build(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultJSON(spec)
	}

	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, handler)
}
