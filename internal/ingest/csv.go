package ingest

import (
	"encoding/csv"
	"strings"

	"chartspec/internal/chartspec"
)

// RawTable is the transient result of CSV parsing: a trimmed header and data
// rows already normalized to the header's width.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// ParseCSV parses raw CSV text into a RawTable. The delimiter is sniffed from
// the header line (comma, semicolon, or tab; comma wins ties). Rows shorter
// than the header are padded with empty cells; rows longer than the header
// are rejected.
func ParseCSV(raw string) (*RawTable, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "CSV input is empty")
	}

	r := csv.NewReader(strings.NewReader(trimmed))
	r.Comma = detectDelimiter(trimmed)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "malformed CSV: %v", err)
	}
	if len(rows) < 2 {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput,
			"CSV must have a header row and at least one data row")
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	data := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, chartspec.Errorf(chartspec.ErrRaggedRow,
				"row %d has %d cells but the header has %d columns", i+1, len(row), len(header))
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		data = append(data, row)
	}

	return &RawTable{Header: header, Rows: data}, nil
}

// detectDelimiter sniffs the field separator from the first line. Comma is
// the guaranteed minimum; semicolons and tabs are recognized for spreadsheet
// exports.
func detectDelimiter(raw string) rune {
	line, _, _ := strings.Cut(raw, "\n")
	best, count := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if n := strings.Count(line, string(cand)); n > count {
			best, count = cand, n
		}
	}
	return best
}

// Columns views the table as ordered columns of tagged cells. Empty cells
// become nulls.
func (t *RawTable) Columns() []Column {
	cols := make([]Column, len(t.Header))
	for i, name := range t.Header {
		cols[i] = Column{Name: name, Cells: make([]Value, len(t.Rows))}
	}
	for ri, row := range t.Rows {
		for ci := range t.Header {
			cols[ci].Cells[ri] = StringValue(row[ci])
		}
	}
	return cols
}

// FromCSV runs the full auto-detection pipeline over CSV text: parse,
// classify, build aligned labels and datasets.
func FromCSV(raw string) ([]string, []chartspec.Dataset, error) {
	table, err := ParseCSV(raw)
	if err != nil {
		return nil, nil, err
	}
	cols := table.Columns()
	cls, err := Classify(cols)
	if err != nil {
		return nil, nil, err
	}
	labels, datasets := BuildDatasets(cols, cls)
	return labels, datasets, nil
}
