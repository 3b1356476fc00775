package records

import (
	"errors"
	"maps"
)

// Replace overwrites the record addressed by loc with a copy of data. The key
// field keeps the value it had before the call whatever data holds. A key
// locator that matches nothing leaves seq untouched and returns nil.
func Replace(seq []Record, loc Locator, data Record, keyField string) error {
	return mutate(seq, loc, data, keyField, func(_ Record, data Record) Record {
		return data
	})
}

// Update merges data into the record addressed by loc. Fields not present in
// data are left alone and the key field is restored afterwards. Misses behave
// as in Replace.
func Update(seq []Record, loc Locator, data Record, keyField string) error {
	return mutate(seq, loc, data, keyField, func(prev Record, data Record) Record {
		next := prev
		if next == nil {
			next = make(Record, len(data))
		}
		maps.Copy(next, data)
		return next
	})
}

func mutate(seq []Record, loc Locator, data Record, keyField string, apply func(prev, data Record) Record) error {
	if data == nil {
		return ErrInvalidData
	}
	i, err := position(seq, loc, keyField)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	prev := seq[i]
	key, hasKey := prev[keyField]
	if loc.IsKey() {
		key, hasKey = loc.key, true
	}

	next := apply(prev, maps.Clone(data))
	if hasKey {
		next[keyField] = key
	} else {
		delete(next, keyField)
	}
	seq[i] = next
	return nil
}
