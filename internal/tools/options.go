package tools

import "chartspec/internal/chartspec"

// SpecOptions is the presentation surface shared by every chart tool.
type SpecOptions struct {
	ChartType      string `json:"chart_type,omitempty" jsonschema:"description=Chart type: bar / line / pie / doughnut / radar / polar / area (default bar)"`
	Title          string `json:"title,omitempty" jsonschema:"description=Chart title (default 'Chart')"`
	Stacked        bool   `json:"stacked,omitempty" jsonschema:"description=Stack series cumulatively; only valid for bar and area charts"`
	LegendPosition string `json:"legend_position,omitempty" jsonschema:"description=Legend placement: top / bottom / left / right / none (default: renderer default)"`
	XAxisLabel     string `json:"x_axis_label,omitempty" jsonschema:"description=X axis label (pass-through metadata)"`
	YAxisLabel     string `json:"y_axis_label,omitempty" jsonschema:"description=Y axis label (pass-through metadata)"`
}

func (o SpecOptions) params(labels []string, datasets []chartspec.Dataset) chartspec.Params {
	return chartspec.Params{
		ChartType:      o.ChartType,
		Title:          o.Title,
		Labels:         labels,
		Datasets:       datasets,
		Stacked:        o.Stacked,
		LegendPosition: o.LegendPosition,
		XAxisLabel:     o.XAxisLabel,
		YAxisLabel:     o.YAxisLabel,
	}
}
