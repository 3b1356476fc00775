package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a field cannot be written at the requested level.
	ErrUnknownField = errors.New("unknown or read-only field")
	// ErrNoSource is returned by FetchWeatherData on a Weather built without a Source.
	ErrNoSource = errors.New("no weather data source configured")
)

// AccessError wraps a failed write (or record read) on the document.
type AccessError struct {
	Op  string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("weather: %s: %v", e.Op, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
