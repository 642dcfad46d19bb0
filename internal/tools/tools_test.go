package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartspec/internal/chartspec"
)

func TestBuildCSVChart(t *testing.T) {
	spec, err := buildCSVChart(CSVChartArgs{
		CSV: "Month,Revenue,Expenses\nJan,4200,3800\nFeb,5100,4200\n",
		SpecOptions: SpecOptions{
			ChartType: "bar",
			Title:     "Q1",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, chartspec.Bar, spec.ChartType)
	assert.Equal(t, "Q1", spec.Title)
	assert.Equal(t, []string{"Jan", "Feb"}, spec.Labels)
	require.Len(t, spec.Datasets, 2)
	assert.NotEqual(t, spec.Datasets[0].Color, spec.Datasets[1].Color,
		"auto-assigned palette colors are distinct")
}

func TestBuildCSVChartPieWithTwoSeries(t *testing.T) {
	_, err := buildCSVChart(CSVChartArgs{
		CSV:         "Month,Revenue,Expenses\nJan,4200,3800\n",
		SpecOptions: SpecOptions{ChartType: "pie"},
	})
	require.Error(t, err)
	assert.Equal(t, chartspec.ErrTooManySeriesForChartType, chartspec.KindOf(err))
}

func TestBuildRecordsChart(t *testing.T) {
	spec, err := buildRecordsChart(RecordsChartArgs{
		Records: `[{"language":"Python","popularity":28.1},{"language":"JavaScript","popularity":21.3}]`,
	})
	require.NoError(t, err)

	assert.Equal(t, chartspec.Bar, spec.ChartType, "chart type defaults to bar")
	assert.Equal(t, []string{"Python", "JavaScript"}, spec.Labels)
	require.Len(t, spec.Datasets, 1)
	assert.Equal(t, "popularity", spec.Datasets[0].Label)
}

func TestBuildDataChart(t *testing.T) {
	spec, err := buildDataChart(DataChartArgs{
		Labels:   "Jan,Feb",
		Datasets: `[{"label":"Rev","values":[10,20]}]`,
		SpecOptions: SpecOptions{
			ChartType:      "line",
			LegendPosition: "top",
			Stacked:        false,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Jan", "Feb"}, spec.Labels)
	require.Len(t, spec.Datasets, 1)
	require.NotNil(t, spec.Datasets[0].Values[0])
	assert.Equal(t, 10.0, *spec.Datasets[0].Values[0])
	require.NotNil(t, spec.Legend)
	assert.Equal(t, chartspec.LegendTop, spec.Legend.Position)
}

func TestBuildDataChartLengthMismatch(t *testing.T) {
	_, err := buildDataChart(DataChartArgs{
		Labels:   "Jan,Feb,Mar",
		Datasets: `[{"label":"Rev","values":[10,20]}]`,
	})
	require.Error(t, err)
	assert.Equal(t, chartspec.ErrLengthMismatch, chartspec.KindOf(err))
}

func TestBuildDataChartStackedPie(t *testing.T) {
	_, err := buildDataChart(DataChartArgs{
		Labels:      "A,B",
		Datasets:    `[{"label":"S","values":[1,2]}]`,
		SpecOptions: SpecOptions{ChartType: "pie", Stacked: true},
	})
	require.Error(t, err)
	assert.Equal(t, chartspec.ErrStackingNotSupported, chartspec.KindOf(err))
}

func TestSpecSerializesPerContract(t *testing.T) {
	spec, err := buildDataChart(DataChartArgs{
		Labels:   "Jan,Feb",
		Datasets: `[{"label":"Rev","values":[10,null]}]`,
	})
	require.NoError(t, err)

	out, err := json.Marshal(spec)
	require.NoError(t, err)

	var decoded struct {
		ChartType string `json:"chartType"`
		Labels    []string
		Datasets  []struct {
			Label  string
			Values []*float64
			Color  string
		}
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "bar", decoded.ChartType)
	assert.Equal(t, []string{"Jan", "Feb"}, decoded.Labels)
	require.Len(t, decoded.Datasets, 1)
	assert.Nil(t, decoded.Datasets[0].Values[1])
	assert.NotEmpty(t, decoded.Datasets[0].Color)
}

func TestNewServerConstructs(t *testing.T) {
	assert.NotNil(t, NewServer())
}
