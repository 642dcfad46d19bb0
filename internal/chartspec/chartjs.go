package chartspec

// ChartJS converts a validated spec into the Chart.js configuration an
// external renderer consumes. The mapping is mechanical: area charts are
// filled line charts, polar charts use the "polarArea" type, radial types get
// an "r" scale and cartesian types a zero-based "y" scale.
func (s *ChartSpec) ChartJS() map[string]any {
	datasets := make([]map[string]any, len(s.Datasets))
	for i, ds := range s.Datasets {
		entry := map[string]any{
			"label":           ds.Label,
			"data":            ds.Values,
			"backgroundColor": ds.Color,
		}
		if s.ChartType == Area {
			entry["fill"] = true
		}
		datasets[i] = entry
	}

	legend := map[string]any{"display": true}
	if s.Legend != nil {
		if s.Legend.Position == LegendNone {
			legend["display"] = false
		} else {
			legend["position"] = string(s.Legend.Position)
		}
	}

	options := map[string]any{
		"responsive": true,
		"plugins": map[string]any{
			"title": map[string]any{
				"display": s.Title != "",
				"text":    s.Title,
			},
			"legend": legend,
		},
	}
	if scales := s.chartJSScales(); scales != nil {
		options["scales"] = scales
	}

	return map[string]any{
		"type": s.chartJSType(),
		"data": map[string]any{
			"labels":   s.Labels,
			"datasets": datasets,
		},
		"options": options,
	}
}

func (s *ChartSpec) chartJSType() string {
	switch s.ChartType {
	case Area:
		return "line"
	case Polar:
		return "polarArea"
	default:
		return string(s.ChartType)
	}
}

func (s *ChartSpec) chartJSScales() map[string]any {
	switch s.ChartType {
	case Pie, Doughnut:
		return nil
	case Radar, Polar:
		return map[string]any{
			"r": map[string]any{"beginAtZero": true},
		}
	}

	x := map[string]any{}
	y := map[string]any{"beginAtZero": true}
	if s.Stacked {
		x["stacked"] = true
		y["stacked"] = true
	}
	if s.XAxis != nil {
		x["title"] = map[string]any{"display": true, "text": s.XAxis.Label}
	}
	if s.YAxis != nil {
		y["title"] = map[string]any{"display": true, "text": s.YAxis.Label}
	}
	return map[string]any{"x": x, "y": y}
}
