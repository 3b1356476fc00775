package weather

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/vcweather/internal/records"
)

const sampleJSON = `{
	"queryCost": 48,
	"latitude": 37.7771,
	"longitude": -122.42,
	"resolvedAddress": "San Francisco, CA, United States",
	"address": "San Francisco",
	"timezone": "UTC",
	"tzoffset": -8.0,
	"stations": {
		"KSFO": {"distance": 19203.0, "latitude": 37.62, "longitude": -122.37, "useCount": 0, "id": "KSFO", "name": "KSFO", "quality": 100, "contribution": 0.0}
	},
	"days": [
		{
			"datetime": "2024-01-01",
			"datetimeEpoch": 1704096000,
			"tempmax": 58.0,
			"tempmin": 47.3,
			"preciptype": ["rain"],
			"conditions": "Partially cloudy",
			"hours": [
				{"datetime": "00:00:00", "temp": 49.0, "source": "obs"},
				{"datetime": "01:00:00", "temp": 48.5, "source": "obs"}
			]
		},
		{
			"datetime": "2024-01-02",
			"tempmax": 60.1,
			"hours": [
				{"datetime": "00:00:00", "temp": 50.0}
			]
		}
	]
}`

func newTestWeather(t *testing.T) (*Weather, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := NewWeather(nil, logger)
	require.NoError(t, w.LoadJSON([]byte(sampleJSON)))
	return w, &logs
}

// scenarioWeather builds the single day document used by the end-to-end scenarios.
func scenarioWeather() *Weather {
	w := NewWeather(nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	w.SetData(records.Record{
		"days": []any{
			map[string]any{
				"datetime": "2023-01-02",
				"tempmax":  10,
				"hours": []any{
					map[string]any{"datetime": "01:00:00", "temp": 20},
				},
			},
		},
	})
	return w
}

func TestScenario_SetThenGet(t *testing.T) {
	w := scenarioWeather()

	require.NoError(t, w.SetTempmaxOnDay(records.ByKey("2023-01-02"), 18))
	tempmax, ok := w.TempmaxOnDay(records.ByIndex(0))
	assert.True(t, ok)
	assert.Equal(t, 18.0, tempmax)

	require.NoError(t, w.SetTempAtDatetime(records.ByKey("2023-01-02"), records.ByKey("01:00:00"), 25.0))
	hour, err := w.DataAtDatetime(records.ByIndex(0), records.ByIndex(0))
	require.NoError(t, err)
	assert.Equal(t, 25.0, hour["temp"])
	assert.Equal(t, "01:00:00", hour["datetime"])
}

func TestScenario_HourlyProjection(t *testing.T) {
	w := scenarioWeather()

	hours, err := w.HourlyOnDay(records.ByKey("2023-01-02"), "temp")
	require.NoError(t, err)
	assert.Equal(t, []records.Record{{"temp": 20}}, hours)

	require.NoError(t, w.SetTempAtDatetime(records.ByKey("2023-01-02"), records.ByKey("01:00:00"), 25.0))
	hours, err = w.HourlyOnDay(records.ByKey("2023-01-02"), "temp")
	require.NoError(t, err)
	assert.Equal(t, []records.Record{{"temp": 25.0}}, hours)
}

func TestScenario_DataOnDayMisses(t *testing.T) {
	w, _ := newTestWeather(t)

	_, err := w.DataOnDay(records.ByIndex(5))
	assert.ErrorIs(t, err, records.ErrIndexOutOfRange)
	var accessErr *AccessError
	assert.True(t, errors.As(err, &accessErr))

	day, err := w.DataOnDay(records.ByKey("2099-01-01"))
	assert.NoError(t, err)
	assert.Nil(t, day)
}

func TestDataOnDay_Projection(t *testing.T) {
	w, _ := newTestWeather(t)

	day, err := w.DataOnDay(records.ByKey("2024-01-02"), "tempmax", "snow")
	require.NoError(t, err)
	assert.Equal(t, records.Record{"tempmax": 60.1}, day)

	day, err = w.DataOnDay(records.ByIndex(-1))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", day["datetime"])
}

func TestFieldGetter_IsSoft(t *testing.T) {
	w, logs := newTestWeather(t)

	_, ok := w.TempmaxOnDay(records.ByKey("2099-01-01"))
	assert.False(t, ok)
	_, ok = w.TempmaxOnDay(records.ByIndex(9))
	assert.False(t, ok)
	_, ok = w.TempmaxOnDay(records.Locator{})
	assert.False(t, ok)
	_, ok = w.TempAtDatetime(records.ByIndex(0), records.ByKey("23:00:00"))
	assert.False(t, ok)
	_, ok = w.TempAtDatetime(records.ByIndex(0), records.ByIndex(7))
	assert.False(t, ok)

	assert.Nil(t, w.ValueOnDay(records.Locator{}, FieldTempmax))
	assert.Contains(t, logs.String(), "weather data access failed")
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "level=DEBUG")
}

func TestFieldSetter_StringMissIsNoop(t *testing.T) {
	w, _ := newTestWeather(t)
	before, err := w.MarshalJSON()
	require.NoError(t, err)

	assert.NoError(t, w.SetTempmaxOnDay(records.ByKey("2099-01-01"), 1))
	assert.NoError(t, w.SetTempAtDatetime(records.ByKey("2099-01-01"), records.ByIndex(0), 1))
	assert.NoError(t, w.SetTempAtDatetime(records.ByIndex(0), records.ByKey("23:00:00"), 1))
	assert.NoError(t, w.SetDataOnDay(records.ByKey("2099-01-01"), records.Record{"temp": 1.0}))
	assert.NoError(t, w.SetHourlyOnDay(records.ByKey("2099-01-01"), nil))

	after, err := w.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))

	_, ok := w.TempmaxOnDay(records.ByKey("2099-01-01"))
	assert.False(t, ok)
}

func TestFieldSetter_IsLoud(t *testing.T) {
	w, _ := newTestWeather(t)

	err := w.SetTempmaxOnDay(records.Locator{}, 1)
	assert.ErrorIs(t, err, records.ErrInvalidLocator)

	err = w.SetTempmaxOnDay(records.ByIndex(2), 1)
	assert.ErrorIs(t, err, records.ErrIndexOutOfRange)

	err = w.SetTempAtDatetime(records.ByIndex(1), records.ByIndex(1), 1)
	assert.ErrorIs(t, err, records.ErrIndexOutOfRange)

	var accessErr *AccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Contains(t, accessErr.Error(), "set temp at 1 1")
}

func TestSetValue_RejectsKeyAndHours(t *testing.T) {
	w, _ := newTestWeather(t)

	assert.ErrorIs(t, w.SetValueOnDay(records.ByIndex(0), FieldDatetime, "2030-01-01"), ErrUnknownField)
	assert.ErrorIs(t, w.SetValueOnDay(records.ByIndex(0), FieldHours, nil), ErrUnknownField)
	assert.ErrorIs(t, w.SetValueOnDay(records.ByIndex(0), Field("bogus"), 1), ErrUnknownField)
	assert.ErrorIs(t, w.SetValueAtDatetime(records.ByIndex(0), records.ByIndex(0), FieldTempmax, 1), ErrUnknownField)

	day, err := w.DataOnDay(records.ByIndex(0))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", day["datetime"])
}

func TestSetDataOnDay_PreservesKey(t *testing.T) {
	w, _ := newTestWeather(t)

	require.NoError(t, w.SetDataOnDay(records.ByIndex(1), records.Record{"datetime": "1999-12-31", "tempmax": 1.0}))
	day, err := w.DataOnDay(records.ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, records.Record{"datetime": "2024-01-02", "tempmax": 1.0}, day)

	err = w.SetDataOnDay(records.ByIndex(0), nil)
	assert.ErrorIs(t, err, records.ErrInvalidData)
}

func TestUpdateDataOnDay(t *testing.T) {
	w, _ := newTestWeather(t)

	require.NoError(t, w.UpdateDataOnDay(records.ByKey("2024-01-01"), records.Record{"tempmin": 40.0, "datetime": "x"}))

	tempmin, _ := w.TempminOnDay(records.ByIndex(0))
	tempmax, _ := w.TempmaxOnDay(records.ByIndex(0))
	assert.Equal(t, 40.0, tempmin)
	assert.Equal(t, 58.0, tempmax)
	day, _ := w.DataOnDay(records.ByIndex(0), "datetime")
	assert.Equal(t, records.Record{"datetime": "2024-01-01"}, day)
}

func TestSetAndUpdateDataAtDatetime(t *testing.T) {
	w, _ := newTestWeather(t)
	day := records.ByKey("2024-01-01")

	require.NoError(t, w.SetDataAtDatetime(day, records.ByKey("01:00:00"), records.Record{"datetime": "05:00:00", "temp": 1.0}))
	hour, err := w.DataAtDatetime(day, records.ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, records.Record{"datetime": "01:00:00", "temp": 1.0}, hour)

	require.NoError(t, w.UpdateDataAtDatetime(day, records.ByIndex(0), records.Record{"dew": 2.0}))
	hour, err = w.DataAtDatetime(day, records.ByIndex(0))
	require.NoError(t, err)
	assert.Equal(t, records.Record{"datetime": "00:00:00", "temp": 49.0, "source": "obs", "dew": 2.0}, hour)

	assert.ErrorIs(t, w.SetDataAtDatetime(day, records.ByIndex(5), records.Record{}), records.ErrIndexOutOfRange)
	assert.ErrorIs(t, w.UpdateDataAtDatetime(day, records.ByIndex(0), nil), records.ErrInvalidData)
}

func TestDataAtDatetime_Misses(t *testing.T) {
	w, _ := newTestWeather(t)

	hour, err := w.DataAtDatetime(records.ByKey("2099-01-01"), records.ByIndex(0))
	assert.NoError(t, err)
	assert.Nil(t, hour)

	_, err = w.DataAtDatetime(records.ByIndex(0), records.Locator{})
	assert.ErrorIs(t, err, records.ErrInvalidLocator)
}

func TestSetHourlyOnDay(t *testing.T) {
	w, _ := newTestWeather(t)

	require.NoError(t, w.SetHourlyOnDay(records.ByIndex(1), []records.Record{{"datetime": "12:00:00", "temp": 70.0}}))
	temp, ok := w.TempAtDatetime(records.ByKey("2024-01-02"), records.ByKey("12:00:00"))
	assert.True(t, ok)
	assert.Equal(t, 70.0, temp)

	assert.ErrorIs(t, w.SetHourlyOnDay(records.ByIndex(4), nil), records.ErrIndexOutOfRange)
}

func TestBulkAccessors(t *testing.T) {
	w, _ := newTestWeather(t)

	assert.Len(t, w.Days(), 2)
	assert.Equal(t, []records.Record{{"tempmax": 58.0}, {"tempmax": 60.1}}, w.Days("tempmax"))
	assert.Len(t, w.Hours(), 3)
	assert.Equal(t, []records.Record{{"source": "obs"}, {"source": "obs"}, {}}, w.Hours("source"))
	assert.Equal(t, records.Record{"address": "San Francisco"}, w.Data("address", "nothing"))

	w.SetDays([]records.Record{{"datetime": "2030-05-05"}})
	assert.Len(t, w.Days(), 1)
	assert.Empty(t, w.Hours())

	w.Clear()
	assert.Empty(t, w.Data())
	assert.Empty(t, w.Days())
	_, ok := w.QueryCost()
	assert.False(t, ok)
}

func TestDocumentFields(t *testing.T) {
	w, _ := newTestWeather(t)

	cost, ok := w.QueryCost()
	assert.True(t, ok)
	assert.Equal(t, 48.0, cost)
	lat, _ := w.Latitude()
	assert.Equal(t, 37.7771, lat)
	addr, _ := w.ResolvedAddress()
	assert.Equal(t, "San Francisco, CA, United States", addr)

	w.SetResolvedAddress("Oakland, CA")
	w.SetAddress("Oakland")
	w.SetTzOffset(-7)
	addr, _ = w.ResolvedAddress()
	assert.Equal(t, "Oakland, CA", addr)
	address, _ := w.Address()
	assert.Equal(t, "Oakland", address)
	offset, _ := w.TzOffset()
	assert.Equal(t, -7.0, offset)

	stations, err := w.StationInfo()
	require.NoError(t, err)
	assert.Equal(t, "KSFO", stations["KSFO"].ID)
	assert.Equal(t, 100, stations["KSFO"].Quality)
}

func TestTypedDayAccessors(t *testing.T) {
	w, _ := newTestWeather(t)
	day := records.ByIndex(0)

	epoch, ok := w.DatetimeEpochOnDay(day)
	assert.True(t, ok)
	assert.Equal(t, int64(1704096000), epoch)

	types, ok := w.PreciptypeOnDay(day)
	assert.True(t, ok)
	assert.Equal(t, []string{"rain"}, types)

	cond, ok := w.ConditionsOnDay(day)
	assert.True(t, ok)
	assert.Equal(t, "Partially cloudy", cond)

	require.NoError(t, w.SetSunriseOnDay(day, "07:25:12"))
	sunrise, _ := w.SunriseOnDay(day)
	assert.Equal(t, "07:25:12", sunrise)

	source, ok := w.SourceAtDatetime(day, records.ByKey("01:00:00"))
	assert.True(t, ok)
	assert.Equal(t, "obs", source)
}

func TestDatetimes(t *testing.T) {
	w, _ := newTestWeather(t)

	days, err := w.DailyDatetimes()
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}, days)

	hours, err := w.HourlyDatetimes()
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}, hours)

	// Restartable: a second call yields the same values.
	again, err := w.HourlyDatetimes()
	require.NoError(t, err)
	assert.Equal(t, hours, again)

	require.NoError(t, w.UpdateDataOnDay(records.ByIndex(0), records.Record{"hours": []records.Record{{"datetime": "25:99"}}}))
	_, err = w.HourlyDatetimes()
	assert.Error(t, err)
}

type fakeSource struct {
	doc   records.Record
	err   error
	query Query
	calls int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(_ context.Context, q Query) (records.Record, error) {
	f.calls++
	f.query = q
	if f.err != nil {
		return nil, f.err
	}
	return f.doc.Clone(), nil
}

func TestFetchWeatherData(t *testing.T) {
	src := &fakeSource{doc: records.Record{"address": "Oslo", "days": []any{map[string]any{"datetime": "2024-03-01"}}}}
	w := NewWeather(src, nil)

	doc, err := w.FetchWeatherData(context.Background(), Query{Location: " Oslo ", From: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "Oslo", doc["address"])
	assert.Equal(t, UnitGroupUS, src.query.UnitGroup)
	assert.Equal(t, DefaultInclude, src.query.Include)
	assert.Equal(t, "Oslo", src.query.Location)

	day, err := w.DataOnDay(records.ByKey("2024-03-01"))
	require.NoError(t, err)
	assert.NotNil(t, day)
}

func TestFetchWeatherData_Errors(t *testing.T) {
	_, err := NewWeather(nil, nil).FetchWeatherData(context.Background(), Query{Location: "x"})
	assert.ErrorIs(t, err, ErrNoSource)

	upstream := errors.New("boom")
	src := &fakeSource{err: upstream}
	w := NewWeather(src, nil)
	w.SetData(records.Record{"address": "kept"})

	_, err = w.FetchWeatherData(context.Background(), Query{Location: "x"})
	assert.Same(t, upstream, err)
	assert.Equal(t, "kept", w.Data()["address"])

	_, err = w.FetchWeatherData(context.Background(), Query{Location: "x", UnitGroup: "imperial"})
	assert.Error(t, err)
	_, err = w.FetchWeatherData(context.Background(), Query{Location: "x", To: "2024-01-01"})
	assert.Error(t, err)
	_, err = w.FetchWeatherData(context.Background(), Query{Location: "x", From: "01/02/2024"})
	assert.Error(t, err)
	assert.Equal(t, 1, src.calls)
}
