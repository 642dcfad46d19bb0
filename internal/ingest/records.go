package ingest

import (
	"strings"

	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"chartspec/internal/chartspec"
)

// RawRecordSet is the transient result of parsing a JSON array of objects.
// Each record preserves its field order; the union of fields across records
// (first-encountered order) defines the column set.
type RawRecordSet struct {
	Records []*orderedmap.OrderedMap[string, Value]
}

// ParseRecords parses a JSON document whose top level must be a non-empty
// array of objects. Nested object/array field values become opaque cells and
// never fail the parse.
func ParseRecords(raw string) (*RawRecordSet, error) {
	data := []byte(strings.TrimSpace(raw))
	if len(data) == 0 {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "JSON input is empty")
	}

	var elemErr error
	var records []*orderedmap.OrderedMap[string, Value]
	_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if elemErr != nil {
			return
		}
		if dt != jsonparser.Object {
			elemErr = chartspec.Errorf(chartspec.ErrInvalidElement,
				"array element %d is not an object", len(records))
			return
		}
		rec := orderedmap.New[string, Value]()
		elemErr = jsonparser.ObjectEach(value, func(key, v []byte, vdt jsonparser.ValueType, _ int) error {
			rec.Set(string(key), jsonValue(v, vdt))
			return nil
		})
		records = append(records, rec)
	})
	if err != nil {
		return nil, chartspec.Errorf(chartspec.ErrNotAnArray,
			"top-level JSON value must be an array of objects: %v", err)
	}
	if elemErr != nil {
		return nil, elemErr
	}
	if len(records) == 0 {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "JSON array must not be empty")
	}
	return &RawRecordSet{Records: records}, nil
}

func jsonValue(raw []byte, dt jsonparser.ValueType) Value {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return NullValue()
		}
		return StringValue(s)
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return NullValue()
		}
		return NumberValue(f)
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return NullValue()
		}
		return BoolValue(b)
	case jsonparser.Null:
		return NullValue()
	}
	return OpaqueValue()
}

// Columns views the record set as ordered columns over the union of field
// names. A field missing from a record yields a null cell at that row.
func (rs *RawRecordSet) Columns() []Column {
	var order []string
	seen := map[string]bool{}
	for _, rec := range rs.Records {
		for p := rec.Oldest(); p != nil; p = p.Next() {
			if !seen[p.Key] {
				seen[p.Key] = true
				order = append(order, p.Key)
			}
		}
	}

	cols := make([]Column, len(order))
	for i, name := range order {
		cells := make([]Value, len(rs.Records))
		for ri, rec := range rs.Records {
			if v, ok := rec.Get(name); ok {
				cells[ri] = v
			} else {
				cells[ri] = NullValue()
			}
		}
		cols[i] = Column{Name: name, Cells: cells}
	}
	return cols
}

// FromRecords runs the full auto-detection pipeline over a JSON array of
// records: parse, classify, build aligned labels and datasets.
func FromRecords(raw string) ([]string, []chartspec.Dataset, error) {
	rs, err := ParseRecords(raw)
	if err != nil {
		return nil, nil, err
	}
	cols := rs.Columns()
	cls, err := Classify(cols)
	if err != nil {
		return nil, nil, err
	}
	labels, datasets := BuildDatasets(cols, cls)
	return labels, datasets, nil
}
