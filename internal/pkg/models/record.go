package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawClassRecord is a CLAS object exactly as the catalog returns it. Decode
// with json.Decoder.UseNumber so numeric fields keep their text. Every
// accessor treats a missing key as empty.
type RawClassRecord map[string]interface{}

func (r RawClassRecord) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the field as text; nil and missing read as "".
func (r RawClassRecord) String(key string) string {
	return stringify(r[key])
}

// StringOr is String with a fallback for missing or null fields.
func (r RawClassRecord) StringOr(key, fallback string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback
	}
	return stringify(v)
}

// Int coerces the field to an integer, 0 when it is not numeric.
func (r RawClassRecord) Int(key string) int {
	n, _ := r.IntOK(key)
	return n
}

// IntOK reports whether the field coerced cleanly.
func (r RawClassRecord) IntOK(key string) (int, bool) {
	switch v := r[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return int(f), true
		}
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Strings returns a list field as text. A scalar reads as a one-element list.
func (r RawClassRecord) Strings(key string) []string {
	switch v := r[key].(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	case []string:
		return v
	default:
		s := stringify(v)
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// IsList reports whether the field holds a JSON array.
func (r RawClassRecord) IsList(key string) bool {
	switch r[key].(type) {
	case []interface{}, []string:
		return true
	}
	return false
}

// Records returns the object elements of a list field.
func (r RawClassRecord) Records(key string) []RawClassRecord {
	list, ok := r[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]RawClassRecord, 0, len(list))
	for _, item := range list {
		switch m := item.(type) {
		case map[string]interface{}:
			out = append(out, RawClassRecord(m))
		case RawClassRecord:
			out = append(out, m)
		}
	}
	return out
}

// Truthy is false for missing, null, empty strings, empty lists and empty objects.
func (r RawClassRecord) Truthy(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	}
	return true
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
