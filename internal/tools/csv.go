package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"chartspec/internal/chartspec"
	"chartspec/internal/ingest"
)

type CSVChartArgs struct {
	CSV string `json:"csv" jsonschema:"description=CSV text with a header row and at least one data row. The first non-numeric column becomes the category labels; each numeric column becomes a series,required"`
	SpecOptions
}

func buildCSVChart(args CSVChartArgs) (*chartspec.ChartSpec, error) {
	labels, datasets, err := ingest.FromCSV(args.CSV)
	if err != nil {
		return nil, err
	}
	return chartspec.New(args.params(labels, datasets))
}

func registerCSVTool(srv *server.MCPServer) {
	registerChartTool(srv, chartToolConfig{
		name: "chart_from_csv",
		description: `Builds a validated chart specification from CSV text.
		              The first non-numeric column supplies category labels and every numeric column becomes a named series; all-numeric tables use row positions as labels.
		              Use this when the data is already tabular text (e.g. spreadsheet exports, query output).
		              Supports bar, line, pie, doughnut, radar, polar, and area charts with optional stacking, legend placement, and axis labels.`,
	},
		buildCSVChart,
	)
}
