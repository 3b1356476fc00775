package common

// Project returns a new map holding only the requested keys that exist in m.
// Keys missing from m are skipped; keys of m that were not requested are dropped.
func Project[M ~map[string]V, V any](m M, keys []string) M {
	out := make(M, len(keys))
	for _, key := range keys {
		if v, ok := m[key]; ok {
			out[key] = v
		}
	}
	return out
}

// ProjectAll applies Project to every element of records. An empty key list
// returns records unchanged.
func ProjectAll[M ~map[string]V, V any](records []M, keys []string) []M {
	if len(keys) == 0 {
		return records
	}
	out := make([]M, 0, len(records))
	for _, r := range records {
		out = append(out, Project(r, keys))
	}
	return out
}
