// Package jsonval provides typed, defaulting lookups over loosely-typed JSON
// documents. Missing or mistyped values fall back to the caller's default
// instead of producing an error.
package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrTrailingData is returned when a document is followed by more JSON.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Decode parses a single JSON value. Numbers are kept as json.Number so that
// integer fields keep their full unsigned range.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

// Object returns v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Array returns v as a JSON array.
func Array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// Path walks nested objects by key and returns the value found, or nil.
func Path(v any, keys ...string) any {
	for _, key := range keys {
		m, ok := Object(v)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

// String returns v as a string, or def.
func String(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Uint returns v as a non-negative integer, or def.
// Fractional, negative and out-of-range numbers yield def.
func Uint(v any, def uint64) uint64 {
	n, ok := v.(json.Number)
	if !ok {
		return def
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return def
	}
	return u
}

// Int returns v as a signed integer, or def.
func Int(v any, def int64) int64 {
	n, ok := v.(json.Number)
	if !ok {
		return def
	}
	i, err := n.Int64()
	if err != nil {
		return def
	}
	return i
}

// Bool returns v as a boolean, or def.
func Bool(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// IsObject reports whether v is a JSON object.
func IsObject(v any) bool {
	_, ok := Object(v)
	return ok
}

// Text renders v as a string: strings verbatim, everything else as compact
// JSON.
func Text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(out)
}
