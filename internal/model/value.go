package model

import (
	"strconv"
	"strings"
)

// Value is a string-or-number variant. Spreadsheet cells keep their raw
// string form unless they parse as a number; API fields arrive numeric.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// String wraps a raw string value.
func String(s string) Value {
	return Value{str: s}
}

// Number wraps a numeric value.
func Number(f float64) Value {
	return Value{num: f, isNum: true}
}

// Cell converts a raw spreadsheet cell to a Value, preferring numeric form.
func Cell(s string) Value {
	trimmed := strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	return String(trimmed)
}

// IsNumber reports whether the value carries a number.
func (v Value) IsNumber() bool { return v.isNum }

// Float returns the numeric value, or 0 for string values.
func (v Value) Float() float64 { return v.num }

// Text returns the value rendered as a string. Numbers use the shortest
// exact decimal form.
func (v Value) Text() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// ValueMap holds the fields extracted and enriched for a single fund.
// A missing key means the field was never observed; nothing is defaulted.
type ValueMap map[Field]Value

// SetString stores a string value.
func (m ValueMap) SetString(f Field, s string) { m[f] = String(s) }

// SetNumber stores a numeric value.
func (m ValueMap) SetNumber(f Field, n float64) { m[f] = Number(n) }

// Lookup returns the value for a field and whether it is present.
func (m ValueMap) Lookup(f Field) (Value, bool) {
	v, ok := m[f]
	return v, ok
}

// Has reports whether the field is present.
func (m ValueMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Text returns the field rendered as a string, or "" when absent.
func (m ValueMap) Text(f Field) string {
	v, ok := m[f]
	if !ok {
		return ""
	}
	return v.Text()
}
