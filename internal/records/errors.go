package records

import "errors"

var (
	// ErrNotFound is returned when no record carries the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrIndexOutOfRange is returned for positions outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidLocator is returned for a Locator that is neither a key nor an index.
	ErrInvalidLocator = errors.New("invalid locator: expected a key or an index")
	// ErrInvalidData is returned when replacement data is not a record.
	ErrInvalidData = errors.New("invalid data: expected a record")
)
