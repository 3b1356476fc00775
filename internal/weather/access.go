package weather

import (
	"context"
	"errors"
	"log/slog"

	"github.com/i474232898/vcweather/internal/records"
)

// failurePolicy decides what guard does with an error from a document access.
type failurePolicy uint8

const (
	// failSoft logs the error and reports success. Used by field getters.
	failSoft failurePolicy = iota
	// failLoud returns the error wrapped in an AccessError. A key lookup miss
	// is not an error under this policy: the access becomes a no-op.
	failLoud
)

// guard runs fn and applies policy to its error.
func (w *Weather) guard(op string, policy failurePolicy, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	miss := errors.Is(err, records.ErrNotFound)
	if policy == failSoft {
		level := slog.LevelWarn
		if miss {
			level = slog.LevelDebug
		}
		w.logger.Log(context.Background(), level, "weather data access failed", "op", op, "error", err)
		return nil
	}
	if miss {
		return nil
	}
	return &AccessError{Op: op, Err: err}
}

func (w *Weather) locateDay(day records.Locator) (records.Record, error) {
	return records.Locate(w.days(), day, records.KeyField)
}

func (w *Weather) locateHour(day, hour records.Locator) (records.Record, error) {
	d, err := w.locateDay(day)
	if err != nil {
		return nil, err
	}
	return records.Locate(sequence(d, FieldHours), hour, records.KeyField)
}
