package ingest

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	"chartspec/internal/chartspec"
)

// ParseDatasets parses the explicit-form datasets argument: a JSON array of
// `{label, values, color?}` objects. A single bare object is auto-wrapped.
// Key variations are normalized: "data" is an alias for "values",
// "backgroundColor"/"borderColor" for "color".
func ParseDatasets(raw string) ([]chartspec.Dataset, error) {
	stripped := strings.TrimSpace(raw)
	if stripped == "" {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "datasets must not be empty")
	}

	var node any
	if err := json.Unmarshal([]byte(stripped), &node); err != nil {
		return nil, chartspec.Errorf(chartspec.ErrNotAnArray, "datasets must be valid JSON: %v", err)
	}

	var items []any
	switch v := node.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, chartspec.Errorf(chartspec.ErrNotAnArray, "datasets must be a JSON array of objects")
	}
	if len(items) == 0 {
		return nil, chartspec.Errorf(chartspec.ErrEmptyInput, "datasets must not be empty")
	}

	datasets := make([]chartspec.Dataset, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, chartspec.Errorf(chartspec.ErrInvalidElement,
				"dataset %d is not an object", i)
		}
		ds, err := normalizeDataset(obj, i)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

func normalizeDataset(obj map[string]any, index int) (chartspec.Dataset, error) {
	label := strings.TrimSpace(cast.ToString(obj["label"]))

	rawValues, ok := obj["values"]
	if !ok {
		rawValues = obj["data"]
	}
	items, ok := rawValues.([]any)
	if !ok {
		return chartspec.Dataset{}, chartspec.Errorf(chartspec.ErrInvalidElement,
			"dataset %q (index %d) has no values array", label, index)
	}

	values := make([]*float64, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		// already-structured {"label": ..., "value": ...} entries pass
		// through with just the value
		if m, ok := item.(map[string]any); ok {
			if inner, ok := m["value"]; ok {
				item = inner
				if item == nil {
					continue
				}
			}
		}
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return chartspec.Dataset{}, chartspec.Errorf(chartspec.ErrInvalidElement,
				"dataset %q value at position %d is not numeric: %v", label, i, item)
		}
		v := f
		values[i] = &v
	}

	color := cast.ToString(obj["color"])
	if color == "" {
		color = cast.ToString(obj["backgroundColor"])
	}
	if color == "" {
		color = cast.ToString(obj["borderColor"])
	}

	return chartspec.Dataset{Label: label, Values: values, Color: color}, nil
}

// ValidateAlignment checks explicit-form input for internal consistency:
// every dataset's value count must equal the label count and dataset labels
// must be unique.
func ValidateAlignment(labels []string, datasets []chartspec.Dataset) error {
	seen := make(map[string]bool, len(datasets))
	for _, ds := range datasets {
		if len(ds.Values) != len(labels) {
			return chartspec.Errorf(chartspec.ErrLengthMismatch,
				"dataset %q has %d values for %d labels", ds.Label, len(ds.Values), len(labels))
		}
		if seen[ds.Label] {
			return chartspec.Errorf(chartspec.ErrDuplicateDatasetLabel,
				"duplicate dataset label %q", ds.Label)
		}
		seen[ds.Label] = true
	}
	return nil
}
