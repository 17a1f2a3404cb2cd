package model

import "strings"

// Identifier is a seed fund entry: a display key optionally paired with a
// secondary-source slug, "Display-Key:slug". Only the display key addresses
// the research site and the mapping store.
type Identifier string

// Primary returns the display key, the part before the first ':'.
func (id Identifier) Primary() string {
	key, _, _ := strings.Cut(string(id), ":")
	return key
}

// Slug returns the secondary-source slug, or "" when the identifier has none.
func (id Identifier) Slug() string {
	_, slug, _ := strings.Cut(string(id), ":")
	return slug
}

// MappingRecord associates a fund's display key with the keys it carries in
// the other sources. Unset keys marshal away entirely.
type MappingRecord struct {
	DisplayKey string `json:"akKey"`
	MetricsKey string `json:"mftools_key,omitempty"`
	SchemeCode string `json:"amfiKey,omitempty"`
	Slug       string `json:"growwKey,omitempty"`
	Category   string `json:"category,omitempty"`
}

// MetricsRow is one fund's row of spreadsheet risk metrics, keyed by the
// resolved metric field. Absent cells are omitted, never zero-filled.
type MetricsRow map[Field]Value

// Outcome is the per-fund extraction result: a populated value map on
// success, or just the display key that yielded no data.
type Outcome struct {
	DisplayKey string
	Values     ValueMap
}

// Success builds an outcome carrying extracted values.
func Success(displayKey string, values ValueMap) Outcome {
	return Outcome{DisplayKey: displayKey, Values: values}
}

// Failure builds an outcome for a fund that yielded no data.
func Failure(displayKey string) Outcome {
	return Outcome{DisplayKey: displayKey}
}

// OK reports whether the outcome carries data.
func (o Outcome) OK() bool { return o.Values != nil }
