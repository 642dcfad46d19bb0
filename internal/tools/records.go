package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"chartspec/internal/chartspec"
	"chartspec/internal/ingest"
)

type RecordsChartArgs struct {
	Records string `json:"records" jsonschema:"description=JSON array of objects (e.g. [{month: 'Jan', revenue: 4200}, ...]). The first non-numeric field becomes the category labels; each numeric field becomes a series,required"`
	SpecOptions
}

func buildRecordsChart(args RecordsChartArgs) (*chartspec.ChartSpec, error) {
	labels, datasets, err := ingest.FromRecords(args.Records)
	if err != nil {
		return nil, err
	}
	return chartspec.New(args.params(labels, datasets))
}

func registerRecordsTool(srv *server.MCPServer) {
	registerChartTool(srv, chartToolConfig{
		name: "chart_from_records",
		description: `Builds a validated chart specification from a JSON array of records.
		              The first non-numeric field (in first-encountered order) supplies category labels and every numeric field becomes a named series; fields missing from a record yield null at that position.
		              Use this when the data is a list of uniform objects (e.g. API responses, query results).
		              Supports bar, line, pie, doughnut, radar, polar, and area charts with optional stacking, legend placement, and axis labels.`,
	},
		buildRecordsChart,
	)
}
