// Package weather holds one Visual Crossing timeline document and exposes
// accessors for the document, its days and the hours of each day.
//
// Days and hours are addressed with a records.Locator: records.ByKey takes the
// record's datetime ("2023-01-02" for a day, "01:00:00" for an hour) and
// records.ByIndex its position. Field getters never fail: a lookup problem is
// logged and reported as an absent value. Setters return an *AccessError for
// bad locators, out of range positions and invalid data, and do nothing when
// a key matches no record.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/i474232898/vcweather/internal/common"
	"github.com/i474232898/vcweather/internal/records"
)

// Weather owns a single timeline document. It is not safe for concurrent use.
type Weather struct {
	source Source
	logger *slog.Logger
	data   records.Record
}

// NewWeather creates an empty Weather. source may be nil when the document is
// only ever loaded with SetData or LoadJSON.
func NewWeather(source Source, logger *slog.Logger) *Weather {
	if logger == nil {
		logger = slog.Default()
	}
	return &Weather{
		source: source,
		logger: logger,
		data:   records.Record{},
	}
}

// FetchWeatherData requests the document described by q and makes it the held
// document. Upstream errors are returned unchanged.
func (w *Weather) FetchWeatherData(ctx context.Context, q Query) (records.Record, error) {
	if w.source == nil {
		return nil, ErrNoSource
	}
	q = q.WithDefaults()
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	doc, err := w.source.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("fetched weather data", "source", w.source.Name(), "location", q.Location, "from", q.From, "to", q.To)
	w.SetData(doc)
	return w.data, nil
}

// Data returns the held document, or a projection of its top level when
// elements are given.
func (w *Weather) Data(elements ...string) records.Record {
	if len(elements) > 0 {
		return w.data.Project(elements...)
	}
	return w.data
}

// SetData replaces the held document.
func (w *Weather) SetData(doc records.Record) {
	w.data = normalize(doc)
}

// LoadJSON replaces the held document with the decoded JSON object.
func (w *Weather) LoadJSON(data []byte) error {
	var doc records.Record
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode weather document: %w", err)
	}
	w.SetData(doc)
	return nil
}

// MarshalJSON encodes the held document.
func (w *Weather) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.data)
}

// Clear empties the held document.
func (w *Weather) Clear() {
	w.data = records.Record{}
}

// Days returns the day records, projected to elements when given.
func (w *Weather) Days(elements ...string) []records.Record {
	return common.ProjectAll(w.days(), elements)
}

// SetDays replaces the day records.
func (w *Weather) SetDays(days []records.Record) {
	w.data[string(FieldDays)] = days
	w.data = normalize(w.data)
}

// Hours returns the hour records of every day in document order, projected
// to elements when given.
func (w *Weather) Hours(elements ...string) []records.Record {
	var out []records.Record
	for _, day := range w.days() {
		out = append(out, sequence(day, FieldHours)...)
	}
	return common.ProjectAll(out, elements)
}

func (w *Weather) days() []records.Record {
	return sequence(w.data, FieldDays)
}

func (w *Weather) get(f Field) any {
	return w.data[string(f)]
}

func (w *Weather) set(f Field, v any) {
	w.data[string(f)] = v
}
