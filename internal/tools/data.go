package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"chartspec/internal/chartspec"
	"chartspec/internal/ingest"
)

type DataChartArgs struct {
	Labels   string `json:"labels" jsonschema:"description=Category labels as a comma-separated list (Jan, Feb, Mar) or a JSON array string,required"`
	Datasets string `json:"datasets" jsonschema:"description=JSON array of dataset objects: [{label: 'Revenue', values: [10, 20], color: '#3b82f6'}, ...]. Color is optional; a palette color is assigned when absent,required"`
	SpecOptions
}

func buildDataChart(args DataChartArgs) (*chartspec.ChartSpec, error) {
	labels := ingest.ParseLabels(args.Labels)
	datasets, err := ingest.ParseDatasets(args.Datasets)
	if err != nil {
		return nil, err
	}
	if err := ingest.ValidateAlignment(labels, datasets); err != nil {
		return nil, err
	}
	return chartspec.New(args.params(labels, datasets))
}

func registerDataTool(srv *server.MCPServer) {
	registerChartTool(srv, chartToolConfig{
		name: "chart_from_data",
		description: `Builds a validated chart specification from explicit labels and datasets.
		              Use this when the series are already separated out and no column detection is wanted.
		              Every dataset's value count must equal the label count; dataset labels must be unique.
		              Supports bar, line, pie, doughnut, radar, polar, and area charts with optional stacking, legend placement, and axis labels.`,
	},
		buildDataChart,
	)
}
