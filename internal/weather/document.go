package weather

import (
	"encoding/json"

	"github.com/i474232898/vcweather/internal/records"
)

// normalize rewrites decoded JSON arrays under days and hours into record
// sequences so the document can be addressed in place.
func normalize(doc records.Record) records.Record {
	if doc == nil {
		return records.Record{}
	}
	days, ok := records.SequenceFromAny(doc[string(FieldDays)])
	if !ok {
		return doc
	}
	for _, day := range days {
		if day == nil {
			continue
		}
		if hours, ok := records.SequenceFromAny(day[string(FieldHours)]); ok {
			day[string(FieldHours)] = hours
		}
	}
	doc[string(FieldDays)] = days
	return doc
}

// sequence returns the record sequence stored under field of r, converting a
// raw JSON array in place.
func sequence(r records.Record, field Field) []records.Record {
	if r == nil {
		return nil
	}
	seq, ok := records.SequenceFromAny(r[string(field)])
	if !ok {
		return nil
	}
	if _, done := r[string(field)].([]records.Record); !done {
		r[string(field)] = seq
	}
	return seq
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringsValue(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}
