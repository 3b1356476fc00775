package weather

import (
	"fmt"
	"slices"
)

// Field names an element of the timeline document.
type Field string

// Document level fields.
const (
	FieldQueryCost       Field = "queryCost"
	FieldLatitude        Field = "latitude"
	FieldLongitude       Field = "longitude"
	FieldResolvedAddress Field = "resolvedAddress"
	FieldAddress         Field = "address"
	FieldTimezone        Field = "timezone"
	FieldTzOffset        Field = "tzoffset"
	FieldDays            Field = "days"
)

// Day and hour level fields.
const (
	FieldDatetime       Field = "datetime"
	FieldDatetimeEpoch  Field = "datetimeEpoch"
	FieldTempmax        Field = "tempmax"
	FieldTempmin        Field = "tempmin"
	FieldTemp           Field = "temp"
	FieldFeelslikemax   Field = "feelslikemax"
	FieldFeelslikemin   Field = "feelslikemin"
	FieldFeelslike      Field = "feelslike"
	FieldDew            Field = "dew"
	FieldHumidity       Field = "humidity"
	FieldPrecip         Field = "precip"
	FieldPrecipprob     Field = "precipprob"
	FieldPrecipcover    Field = "precipcover"
	FieldPreciptype     Field = "preciptype"
	FieldSnow           Field = "snow"
	FieldSnowdepth      Field = "snowdepth"
	FieldWindgust       Field = "windgust"
	FieldWindspeed      Field = "windspeed"
	FieldWinddir        Field = "winddir"
	FieldPressure       Field = "pressure"
	FieldCloudcover     Field = "cloudcover"
	FieldVisibility     Field = "visibility"
	FieldSolarradiation Field = "solarradiation"
	FieldSolarenergy    Field = "solarenergy"
	FieldUVIndex        Field = "uvindex"
	FieldSevererisk     Field = "severerisk"
	FieldSunrise        Field = "sunrise"
	FieldSunriseEpoch   Field = "sunriseEpoch"
	FieldSunset         Field = "sunset"
	FieldSunsetEpoch    Field = "sunsetEpoch"
	FieldMoonphase      Field = "moonphase"
	FieldConditions     Field = "conditions"
	FieldDescription    Field = "description"
	FieldIcon           Field = "icon"
	FieldStations       Field = "stations"
	FieldSource         Field = "source"
	FieldHours          Field = "hours"
)

var dayFields = []Field{
	FieldDatetime, FieldDatetimeEpoch, FieldTempmax, FieldTempmin, FieldTemp,
	FieldFeelslikemax, FieldFeelslikemin, FieldFeelslike, FieldDew, FieldHumidity,
	FieldPrecip, FieldPrecipprob, FieldPrecipcover, FieldPreciptype, FieldSnow,
	FieldSnowdepth, FieldWindgust, FieldWindspeed, FieldWinddir, FieldPressure,
	FieldCloudcover, FieldVisibility, FieldSolarradiation, FieldSolarenergy,
	FieldUVIndex, FieldSevererisk, FieldSunrise, FieldSunriseEpoch, FieldSunset,
	FieldSunsetEpoch, FieldMoonphase, FieldConditions, FieldDescription, FieldIcon,
	FieldStations, FieldSource, FieldHours,
}

var hourFields = []Field{
	FieldDatetime, FieldDatetimeEpoch, FieldTemp, FieldFeelslike, FieldDew,
	FieldHumidity, FieldPrecip, FieldPrecipprob, FieldPreciptype, FieldSnow,
	FieldSnowdepth, FieldWindgust, FieldWindspeed, FieldWinddir, FieldPressure,
	FieldCloudcover, FieldVisibility, FieldSolarradiation, FieldSolarenergy,
	FieldUVIndex, FieldSevererisk, FieldConditions, FieldIcon, FieldStations,
	FieldSource,
}

// DayFields lists the fields of a day record in API order.
func DayFields() []Field { return slices.Clone(dayFields) }

// HourFields lists the fields of an hour record in API order.
func HourFields() []Field { return slices.Clone(hourFields) }

// ParseDayField returns the day field called name.
func ParseDayField(name string) (Field, error) {
	return parseField(dayFields, name, "day")
}

// ParseHourField returns the hour field called name.
func ParseHourField(name string) (Field, error) {
	return parseField(hourFields, name, "hour")
}

func parseField(table []Field, name, level string) (Field, error) {
	f := Field(name)
	if !slices.Contains(table, f) {
		return "", fmt.Errorf("%w: %q on %s", ErrUnknownField, name, level)
	}
	return f, nil
}

// writable reports whether f may be assigned through a per-field setter.
// The key and the nested hours only change through record replacement.
func writable(table []Field, f Field) bool {
	return f != FieldDatetime && f != FieldHours && slices.Contains(table, f)
}
