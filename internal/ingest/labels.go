package ingest

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// ParseLabels parses an explicit label list from either a JSON array string
// or a comma-separated string. Callers send both `"A,B,C"` and
// `'["A","B","C"]'`; handle either.
func ParseLabels(raw string) []string {
	stripped := strings.TrimSpace(raw)
	if strings.HasPrefix(stripped, "[") {
		var items []any
		if err := json.Unmarshal([]byte(stripped), &items); err == nil {
			labels := make([]string, len(items))
			for i, item := range items {
				labels[i] = strings.TrimSpace(cast.ToString(item))
			}
			return labels
		}
	}

	parts := strings.Split(raw, ",")
	labels := make([]string, len(parts))
	for i, part := range parts {
		labels[i] = strings.TrimSpace(part)
	}
	return labels
}
