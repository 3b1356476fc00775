package weather

import (
	"fmt"

	"github.com/i474232898/vcweather/internal/records"
)

// DataAtDatetime returns the hour record addressed by day and hour, or its
// projection to elements. A key that matches nothing yields nil without error.
func (w *Weather) DataAtDatetime(day, hour records.Locator, elements ...string) (records.Record, error) {
	var out records.Record
	err := w.guard(fmt.Sprintf("get data at %s %s", day, hour), failLoud, func() error {
		rec, err := w.locateHour(day, hour)
		if err != nil {
			return err
		}
		out = rec
		if len(elements) > 0 {
			out = rec.Project(elements...)
		}
		return nil
	})
	return out, err
}

// SetDataAtDatetime replaces the hour record addressed by day and hour. The
// hour keeps its datetime whatever data holds.
func (w *Weather) SetDataAtDatetime(day, hour records.Locator, data records.Record) error {
	return w.guard(fmt.Sprintf("set data at %s %s", day, hour), failLoud, func() error {
		d, err := w.locateDay(day)
		if err != nil {
			return err
		}
		return records.Replace(sequence(d, FieldHours), hour, data, records.KeyField)
	})
}

// UpdateDataAtDatetime merges data into the hour record addressed by day and hour.
func (w *Weather) UpdateDataAtDatetime(day, hour records.Locator, data records.Record) error {
	return w.guard(fmt.Sprintf("update data at %s %s", day, hour), failLoud, func() error {
		d, err := w.locateDay(day)
		if err != nil {
			return err
		}
		return records.Update(sequence(d, FieldHours), hour, data, records.KeyField)
	})
}

// ValueAtDatetime returns field of the hour addressed by day and hour, or nil
// when either lookup fails or the hour lacks the field.
func (w *Weather) ValueAtDatetime(day, hour records.Locator, field Field) any {
	var v any
	_ = w.guard(fmt.Sprintf("get %s at %s %s", field, day, hour), failSoft, func() error {
		rec, err := w.locateHour(day, hour)
		if err != nil {
			return err
		}
		v = rec[string(field)]
		return nil
	})
	return v
}

// SetValueAtDatetime assigns field of the hour addressed by day and hour.
func (w *Weather) SetValueAtDatetime(day, hour records.Locator, field Field, value any) error {
	return w.guard(fmt.Sprintf("set %s at %s %s", field, day, hour), failLoud, func() error {
		if !writable(hourFields, field) {
			return fmt.Errorf("%w: %q on hour", ErrUnknownField, field)
		}
		rec, err := w.locateHour(day, hour)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: hour %s is not an object", records.ErrInvalidData, hour)
		}
		rec[string(field)] = value
		return nil
	})
}
