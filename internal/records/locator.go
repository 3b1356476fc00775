package records

import (
	"fmt"
	"strconv"
)

type locatorKind uint8

const (
	kindInvalid locatorKind = iota
	kindKey
	kindIndex
)

// Locator identifies one record of a sequence, either by key or by position.
// The zero value is invalid.
type Locator struct {
	kind  locatorKind
	key   string
	index int
}

// ByKey locates the first record whose key field equals key.
func ByKey(key string) Locator {
	return Locator{kind: kindKey, key: key}
}

// ByIndex locates a record by zero-based position. Negative positions count
// from the end of the sequence.
func ByIndex(index int) Locator {
	return Locator{kind: kindIndex, index: index}
}

// ParseLocator reads a textual locator: an integer is a position, anything
// else a key. An empty string yields the invalid locator.
func ParseLocator(s string) Locator {
	if s == "" {
		return Locator{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ByIndex(n)
	}
	return ByKey(s)
}

// IsKey reports whether l locates by key.
func (l Locator) IsKey() bool { return l.kind == kindKey }

// IsIndex reports whether l locates by position.
func (l Locator) IsIndex() bool { return l.kind == kindIndex }

// Key returns the key of a key locator.
func (l Locator) Key() string { return l.key }

// Index returns the position of an index locator.
func (l Locator) Index() int { return l.index }

func (l Locator) String() string {
	switch l.kind {
	case kindKey:
		return strconv.Quote(l.key)
	case kindIndex:
		return strconv.Itoa(l.index)
	default:
		return "<invalid>"
	}
}

// Locate returns the record addressed by loc. Key lookups scan in order and
// return the first match.
func Locate(seq []Record, loc Locator, keyField string) (Record, error) {
	i, err := position(seq, loc, keyField)
	if err != nil {
		return nil, err
	}
	return seq[i], nil
}

// position resolves loc to an index into seq.
func position(seq []Record, loc Locator, keyField string) (int, error) {
	switch loc.kind {
	case kindKey:
		for i, rec := range seq {
			if k, ok := rec.Key(keyField); ok && k == loc.key {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %s %q", ErrNotFound, keyField, loc.key)
	case kindIndex:
		i := loc.index
		if i < 0 {
			i += len(seq)
		}
		if i < 0 || i >= len(seq) {
			return -1, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, loc.index, len(seq))
		}
		return i, nil
	default:
		return -1, ErrInvalidLocator
	}
}
