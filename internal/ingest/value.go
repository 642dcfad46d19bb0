// Package ingest turns loosely-structured tabular input — CSV text, JSON
// arrays of records, or explicit labels+datasets — into aligned category
// labels and numeric series ready for chart-spec construction. Every function
// is pure: no state survives a call.
package ingest

import (
	"strconv"
	"strings"
)

// ValueKind tags a parsed scalar. Untyped values never travel past the
// classifier boundary; they are resolved to concrete numeric/string values
// while building datasets.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	// KindOpaque marks nested JSON values (objects, arrays). Opaque columns
	// are ignorable for classification: neither label nor series candidates.
	KindOpaque
)

// Value is a tagged scalar cell.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

func NullValue() Value   { return Value{kind: KindNull} }
func OpaqueValue() Value { return Value{kind: KindOpaque} }

// StringValue builds a string cell; empty or all-whitespace text counts as a
// missing cell.
func StringValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullValue()
	}
	return Value{kind: KindString, str: s}
}

func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }

// Numeric reports the cell's numeric value. Strings qualify when they parse
// with a locale-invariant "." decimal separator; booleans and nulls never do.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Text renders the cell for use as a category label. Missing and opaque
// cells render empty.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}
