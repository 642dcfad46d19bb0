package chartspec

// singleSeriesTypes are chart types that render exactly one dataset.
var singleSeriesTypes = map[ChartType]bool{
	Pie:      true,
	Doughnut: true,
	Polar:    true,
}

// stackableTypes are the only chart types where stacking is meaningful.
var stackableTypes = map[ChartType]bool{
	Bar:  true,
	Area: true,
}

// Validate is the final structural gate before a ChartSpec is returned. It
// never mutates its input; the first violated rule is reported.
func Validate(spec *ChartSpec) error {
	switch spec.ChartType {
	case Bar, Line, Pie, Doughnut, Radar, Polar, Area:
	default:
		return Errorf(ErrUnknownChartType, "unknown chart type %q", spec.ChartType)
	}

	if len(spec.Datasets) == 0 {
		return Errorf(ErrNoSeries, "chart requires at least one dataset")
	}

	if singleSeriesTypes[spec.ChartType] && len(spec.Datasets) > 1 {
		return Errorf(ErrTooManySeriesForChartType,
			"%s charts support exactly one dataset, got %d", spec.ChartType, len(spec.Datasets))
	}

	if spec.Stacked && !stackableTypes[spec.ChartType] {
		return Errorf(ErrStackingNotSupported,
			"stacking is only supported for bar and area charts, not %s", spec.ChartType)
	}

	if len(spec.Labels) == 0 {
		return Errorf(ErrLengthMismatch, "chart requires at least one label")
	}
	for _, ds := range spec.Datasets {
		if len(ds.Values) != len(spec.Labels) {
			return Errorf(ErrLengthMismatch,
				"dataset %q has %d values for %d labels", ds.Label, len(ds.Values), len(spec.Labels))
		}
	}

	seen := make(map[string]bool, len(spec.Datasets))
	for _, ds := range spec.Datasets {
		if seen[ds.Label] {
			return Errorf(ErrDuplicateDatasetLabel, "duplicate dataset label %q", ds.Label)
		}
		seen[ds.Label] = true
	}

	return nil
}
