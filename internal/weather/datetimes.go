package weather

import (
	"fmt"
	"time"

	"github.com/i474232898/vcweather/internal/records"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// DailyDatetimes parses the datetime of every day, in document order.
func (w *Weather) DailyDatetimes() ([]time.Time, error) {
	loc := w.location()
	days := w.days()
	out := make([]time.Time, 0, len(days))
	for i, day := range days {
		key, _ := day.Key(records.KeyField)
		t, err := time.ParseInLocation(dateLayout, key, loc)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// HourlyDatetimes combines the datetime of every day with the datetime of each
// of its hours, in document order.
func (w *Weather) HourlyDatetimes() ([]time.Time, error) {
	loc := w.location()
	out := []time.Time{}
	for i, day := range w.days() {
		date, _ := day.Key(records.KeyField)
		for j, hour := range sequence(day, FieldHours) {
			clock, _ := hour.Key(records.KeyField)
			t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
			if err != nil {
				return nil, fmt.Errorf("day %d hour %d: %w", i, j, err)
			}
			out = append(out, t)
		}
	}
	return out, nil
}

// location returns the document's timezone, falling back to UTC when it is
// missing or unknown to the system.
func (w *Weather) location() *time.Location {
	name, _ := w.Timezone()
	loc, err := time.LoadLocation(name)
	if err != nil {
		w.logger.Debug("unknown timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}
