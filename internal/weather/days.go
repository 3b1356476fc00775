package weather

import (
	"fmt"

	"github.com/i474232898/vcweather/internal/common"
	"github.com/i474232898/vcweather/internal/records"
)

// DataOnDay returns the day record addressed by day, or its projection to
// elements. A date that matches no day yields nil without error.
func (w *Weather) DataOnDay(day records.Locator, elements ...string) (records.Record, error) {
	var out records.Record
	err := w.guard("get data on day "+day.String(), failLoud, func() error {
		rec, err := w.locateDay(day)
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

// SetDataOnDay replaces the day record addressed by day. The day keeps its
// datetime whatever data holds.
func (w *Weather) SetDataOnDay(day records.Locator, data records.Record) error {
	return w.guard("set data on day "+day.String(), failLoud, func() error {
		return records.Replace(w.days(), day, data, records.KeyField)
	})
}

// UpdateDataOnDay merges data into the day record addressed by day.
func (w *Weather) UpdateDataOnDay(day records.Locator, data records.Record) error {
	return w.guard("update data on day "+day.String(), failLoud, func() error {
		return records.Update(w.days(), day, data, records.KeyField)
	})
}

// HourlyOnDay returns the hour records of a day, each projected to elements
// when given. A date that matches no day yields nil without error.
func (w *Weather) HourlyOnDay(day records.Locator, elements ...string) ([]records.Record, error) {
	var out []records.Record
	err := w.guard("get hourly data on day "+day.String(), failLoud, func() error {
		rec, err := w.locateDay(day)
		if err != nil {
			return err
		}
		out = common.ProjectAll(sequence(rec, FieldHours), elements)
		return nil
	})
	return out, err
}

// SetHourlyOnDay replaces the hour records of a day.
func (w *Weather) SetHourlyOnDay(day records.Locator, hours []records.Record) error {
	return w.guard("set hourly data on day "+day.String(), failLoud, func() error {
		rec, err := w.locateDay(day)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: day %s is not an object", records.ErrInvalidData, day)
		}
		rec[string(FieldHours)] = hours
		return nil
	})
}

// ValueOnDay returns field of the day addressed by day, or nil when the day
// cannot be found or lacks the field.
func (w *Weather) ValueOnDay(day records.Locator, field Field) any {
	var v any
	_ = w.guard(fmt.Sprintf("get %s on day %s", field, day), failSoft, func() error {
		rec, err := w.locateDay(day)
		if err != nil {
			return err
		}
		v = rec[string(field)]
		return nil
	})
	return v
}

// SetValueOnDay assigns field of the day addressed by day.
func (w *Weather) SetValueOnDay(day records.Locator, field Field, value any) error {
	return w.guard(fmt.Sprintf("set %s on day %s", field, day), failLoud, func() error {
		if !writable(dayFields, field) {
			return fmt.Errorf("%w: %q on day", ErrUnknownField, field)
		}
		rec, err := w.locateDay(day)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: day %s is not an object", records.ErrInvalidData, day)
		}
		rec[string(field)] = value
		return nil
	})
}
