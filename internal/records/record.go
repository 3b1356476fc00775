// Package records addresses and mutates records held in ordered sequences.
//
// A sequence is a []Record where every record carries a key field (for the
// weather timeline this is "datetime"). A record is located either by the value
// of that key field or by its position, see Locator.
package records

import (
	"maps"

	"github.com/i474232898/vcweather/internal/common"
)

// KeyField is the key field of day and hour records.
const KeyField = "datetime"

// Record is a decoded JSON object.
type Record map[string]any

// Project returns a copy of r holding only the requested keys.
func (r Record) Project(keys ...string) Record {
	return common.Project(r, keys)
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Key returns the string value of field, if any.
func (r Record) Key(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// FromAny converts a decoded JSON value into a Record. It returns false when v
// is not an object.
func FromAny(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}

// SequenceFromAny converts a decoded JSON array into a record sequence.
// Elements that are not objects become nil records so positions are kept.
func SequenceFromAny(v any) ([]Record, bool) {
	switch s := v.(type) {
	case []Record:
		return s, true
	case []map[string]any:
		out := make([]Record, len(s))
		for i, m := range s {
			out[i] = Record(m)
		}
		return out, true
	case []any:
		out := make([]Record, len(s))
		for i, e := range s {
			out[i], _ = FromAny(e)
		}
		return out, true
	default:
		return nil, false
	}
}
