package ingest

import (
	"strconv"

	"chartspec/internal/chartspec"
)

// Column is one named column of tagged cells, in original row order.
type Column struct {
	Name  string
	Cells []Value
}

// numeric reports whether every non-missing cell parses as a number. Missing
// cells do not disqualify a column; they surface as nulls in the built
// dataset.
func (c Column) numeric() bool {
	for _, cell := range c.Cells {
		if cell.IsNull() {
			continue
		}
		if _, ok := cell.Numeric(); !ok {
			return false
		}
	}
	return true
}

// opaque reports whether the column carries nested values. Opaque columns are
// excluded from classification entirely.
func (c Column) opaque() bool {
	for _, cell := range c.Cells {
		if cell.Kind() == KindOpaque {
			return true
		}
	}
	return false
}

// Classification records which column supplies category labels and which
// become series, all in original column order.
type Classification struct {
	// LabelColumn is the index of the label column, or -1 when labels must be
	// synthesized from 1-based row positions.
	LabelColumn int
	// SeriesColumns are the numeric columns, left to right.
	SeriesColumns []int
}

// Classify decides which column becomes the label axis and which become
// series. The first non-numeric column (left to right) wins the label role;
// later non-numeric columns are dropped, a documented policy matching common
// spreadsheet layouts. When every column is numeric, labels are synthesized
// and all columns become series.
func Classify(cols []Column) (Classification, error) {
	label := -1
	var series []int
	for i, col := range cols {
		switch {
		case col.opaque():
			// ignorable
		case col.numeric():
			series = append(series, i)
		case label == -1:
			label = i
		}
	}
	if len(series) == 0 {
		return Classification{}, chartspec.Errorf(chartspec.ErrNoNumericColumns,
			"input must contain at least one numeric column for chart values")
	}
	return Classification{LabelColumn: label, SeriesColumns: series}, nil
}

// BuildDatasets assembles the label sequence and one dataset per series
// column. Both derive from the same row set, so every dataset's value count
// equals the label count by construction. Missing cells become nulls, never
// zeros.
func BuildDatasets(cols []Column, cls Classification) ([]string, []chartspec.Dataset) {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].Cells)
	}

	labels := make([]string, rows)
	if cls.LabelColumn >= 0 {
		for i, cell := range cols[cls.LabelColumn].Cells {
			labels[i] = cell.Text()
		}
	} else {
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	datasets := make([]chartspec.Dataset, 0, len(cls.SeriesColumns))
	for _, ci := range cls.SeriesColumns {
		values := make([]*float64, rows)
		for ri, cell := range cols[ci].Cells {
			if f, ok := cell.Numeric(); ok {
				v := f
				values[ri] = &v
			}
		}
		datasets = append(datasets, chartspec.Dataset{Label: cols[ci].Name, Values: values})
	}
	return labels, datasets
}
