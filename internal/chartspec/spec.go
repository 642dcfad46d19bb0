// Package chartspec holds the renderer-agnostic chart specification: a fixed
// set of category labels, one or more named numeric series aligned to those
// labels, and presentation metadata. Construction assigns default colors and
// validates chart-type constraints; the returned spec is treated as immutable.
package chartspec

import "strings"

type ChartType string

const (
	Bar      ChartType = "bar"
	Line     ChartType = "line"
	Pie      ChartType = "pie"
	Doughnut ChartType = "doughnut"
	Radar    ChartType = "radar"
	Polar    ChartType = "polar"
	Area     ChartType = "area"
)

// chartTypeAliases maps common spellings onto canonical chart types.
var chartTypeAliases = map[string]ChartType{
	"polararea":  Polar,
	"polar area": Polar,
	"donut":      Doughnut,
}

// ResolveChartType normalizes a user-supplied chart type string.
func ResolveChartType(raw string) (ChartType, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if ct, ok := chartTypeAliases[key]; ok {
		return ct, nil
	}
	switch ct := ChartType(key); ct {
	case Bar, Line, Pie, Doughnut, Radar, Polar, Area:
		return ct, nil
	}
	return "", Errorf(ErrUnknownChartType, "unknown chart type %q", raw)
}

// Dataset is one named series of numeric values, one per category label.
// A nil value marks a missing data point; the renderer decides gap/zero
// policy.
type Dataset struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
	Color  string     `json:"color,omitempty"`
}

// AxisConfig is descriptive metadata passed through to the renderer.
type AxisConfig struct {
	Label string `json:"label"`
}

type LegendPosition string

const (
	LegendTop    LegendPosition = "top"
	LegendBottom LegendPosition = "bottom"
	LegendLeft   LegendPosition = "left"
	LegendRight  LegendPosition = "right"
	LegendNone   LegendPosition = "none"
)

type LegendConfig struct {
	Position LegendPosition `json:"position"`
}

// resolveLegendPosition normalizes a legend position string. Unrecognized
// values fall back to the renderer default (no legend config), same as an
// absent value.
func resolveLegendPosition(raw string) (LegendPosition, bool) {
	switch pos := LegendPosition(strings.ToLower(strings.TrimSpace(raw))); pos {
	case LegendTop, LegendBottom, LegendLeft, LegendRight, LegendNone:
		return pos, true
	}
	return "", false
}

// ChartSpec is the terminal artifact of the pipeline. Every dataset's value
// sequence has exactly len(Labels) entries; Stacked is only set for bar and
// area charts.
type ChartSpec struct {
	ChartType ChartType     `json:"chartType"`
	Title     string        `json:"title"`
	Labels    []string      `json:"labels"`
	Datasets  []Dataset     `json:"datasets"`
	XAxis     *AxisConfig   `json:"xAxis"`
	YAxis     *AxisConfig   `json:"yAxis"`
	Legend    *LegendConfig `json:"legend"`
	Stacked   bool          `json:"stacked"`
}

// Params carries everything needed to construct a ChartSpec. Zero values get
// the documented defaults: chart type "bar", title "Chart".
type Params struct {
	ChartType      string
	Title          string
	Labels         []string
	Datasets       []Dataset
	Stacked        bool
	LegendPosition string
	XAxisLabel     string
	YAxisLabel     string
}

// New builds and validates a ChartSpec. It assigns a palette color to every
// dataset lacking one, applies defaults, and returns either a spec that
// satisfies all chart-type constraints or a categorized error. The input
// datasets are not mutated.
func New(p Params) (*ChartSpec, error) {
	rawType := p.ChartType
	if strings.TrimSpace(rawType) == "" {
		rawType = string(Bar)
	}
	chartType, err := ResolveChartType(rawType)
	if err != nil {
		return nil, err
	}

	title := p.Title
	if title == "" {
		title = "Chart"
	}

	spec := &ChartSpec{
		ChartType: chartType,
		Title:     title,
		Labels:    p.Labels,
		Datasets:  AssignColors(p.Datasets),
		Stacked:   p.Stacked,
	}
	if p.XAxisLabel != "" {
		spec.XAxis = &AxisConfig{Label: p.XAxisLabel}
	}
	if p.YAxisLabel != "" {
		spec.YAxis = &AxisConfig{Label: p.YAxisLabel}
	}
	if pos, ok := resolveLegendPosition(p.LegendPosition); ok {
		spec.Legend = &LegendConfig{Position: pos}
	}

	if err := Validate(spec); err != nil {
		return nil, err
	}
	return spec, nil
}
