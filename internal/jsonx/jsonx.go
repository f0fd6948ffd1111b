// Package jsonx holds forgiving JSON scalar types for payloads produced by
// HTML forms, where numbers arrive as strings and booleans as checkbox
// values. Coercion never fails a request; unparseable input falls back to the
// zero value, matching the legacy API contract.
package jsonx

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Float accepts a JSON number or a numeric string. Anything else decodes to 0.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	*f = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*f = Float(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = Float(v)
	}
	return nil
}

// Int accepts a JSON integer, a float (truncated), or a numeric string.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	var f Float
	_ = f.UnmarshalJSON(b)
	*i = Int(f)
	return nil
}

// Flag is a boolean stored as 0/1. Decoding follows loose truthiness: false,
// 0, "", and null are 0; any other value, including non-empty strings, is 1.
type Flag int

func (fl *Flag) UnmarshalJSON(b []byte) error {
	*fl = 0
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		return nil
	case bytes.Equal(b, []byte("true")):
		*fl = 1
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil && s == "" {
			return nil
		}
		*fl = 1
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil && v == 0 {
		return nil
	}
	*fl = 1
	return nil
}

// Bool reports the flag as a Go bool.
func (fl Flag) Bool() bool { return fl != 0 }

// StringArray decodes either a JSON array of strings or a JSON string that
// itself contains an encoded array (the admin UI submits the latter). Bad
// input yields nil rather than an error.
func StringArray(raw json.RawMessage) ([]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, true
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil, true
		}
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return arr, true
		}
	}
	return nil, false
}

// VariationMap decodes a variations object, attribute name to selected
// values, with the same string-wrapped tolerance as StringArray.
func VariationMap(raw json.RawMessage) (map[string][]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, true
	}
	var m map[string][]string
	if err := json.Unmarshal(raw, &m); err == nil {
		return m, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil, true
		}
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			return m, true
		}
	}
	return nil, false
}
