package weather

import "github.com/i474232898/vcweather/internal/records"

// Typed wrappers over ValueOnDay/SetValueOnDay and
// ValueAtDatetime/SetValueAtDatetime, one pair per field.

// DatetimeEpochOnDay returns the Unix start time of a day.
func (w *Weather) DatetimeEpochOnDay(day records.Locator) (int64, bool) {
	return intValue(w.ValueOnDay(day, FieldDatetimeEpoch))
}

// SetDatetimeEpochOnDay sets the Unix start time of a day.
func (w *Weather) SetDatetimeEpochOnDay(day records.Locator, v int64) error {
	return w.SetValueOnDay(day, FieldDatetimeEpoch, v)
}

// TempmaxOnDay returns the maximum temperature of a day.
func (w *Weather) TempmaxOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldTempmax))
}

// SetTempmaxOnDay sets the maximum temperature of a day.
func (w *Weather) SetTempmaxOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldTempmax, v)
}

// TempminOnDay returns the minimum temperature of a day.
func (w *Weather) TempminOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldTempmin))
}

// SetTempminOnDay sets the minimum temperature of a day.
func (w *Weather) SetTempminOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldTempmin, v)
}

// TempOnDay returns the mean temperature of a day.
func (w *Weather) TempOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldTemp))
}

// SetTempOnDay sets the mean temperature of a day.
func (w *Weather) SetTempOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldTemp, v)
}

// FeelslikemaxOnDay returns the maximum feels-like temperature of a day.
func (w *Weather) FeelslikemaxOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldFeelslikemax))
}

// SetFeelslikemaxOnDay sets the maximum feels-like temperature of a day.
func (w *Weather) SetFeelslikemaxOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldFeelslikemax, v)
}

// FeelslikeminOnDay returns the minimum feels-like temperature of a day.
func (w *Weather) FeelslikeminOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldFeelslikemin))
}

// SetFeelslikeminOnDay sets the minimum feels-like temperature of a day.
func (w *Weather) SetFeelslikeminOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldFeelslikemin, v)
}

// FeelslikeOnDay returns the mean feels-like temperature of a day.
func (w *Weather) FeelslikeOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldFeelslike))
}

// SetFeelslikeOnDay sets the mean feels-like temperature of a day.
func (w *Weather) SetFeelslikeOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldFeelslike, v)
}

// DewOnDay returns the dew point of a day.
func (w *Weather) DewOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldDew))
}

// SetDewOnDay sets the dew point of a day.
func (w *Weather) SetDewOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldDew, v)
}

// HumidityOnDay returns the relative humidity in percent of a day.
func (w *Weather) HumidityOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldHumidity))
}

// SetHumidityOnDay sets the relative humidity in percent of a day.
func (w *Weather) SetHumidityOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldHumidity, v)
}

// PrecipOnDay returns the precipitation amount of a day.
func (w *Weather) PrecipOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldPrecip))
}

// SetPrecipOnDay sets the precipitation amount of a day.
func (w *Weather) SetPrecipOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldPrecip, v)
}

// PrecipprobOnDay returns the chance of precipitation in percent of a day.
func (w *Weather) PrecipprobOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldPrecipprob))
}

// SetPrecipprobOnDay sets the chance of precipitation in percent of a day.
func (w *Weather) SetPrecipprobOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldPrecipprob, v)
}

// PrecipcoverOnDay returns the share of hours with precipitation of a day.
func (w *Weather) PrecipcoverOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldPrecipcover))
}

// SetPrecipcoverOnDay sets the share of hours with precipitation of a day.
func (w *Weather) SetPrecipcoverOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldPrecipcover, v)
}

// PreciptypeOnDay returns the precipitation types of a day.
func (w *Weather) PreciptypeOnDay(day records.Locator) ([]string, bool) {
	return stringsValue(w.ValueOnDay(day, FieldPreciptype))
}

// SetPreciptypeOnDay sets the precipitation types of a day.
func (w *Weather) SetPreciptypeOnDay(day records.Locator, v []string) error {
	return w.SetValueOnDay(day, FieldPreciptype, v)
}

// SnowOnDay returns the snowfall of a day.
func (w *Weather) SnowOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldSnow))
}

// SetSnowOnDay sets the snowfall of a day.
func (w *Weather) SetSnowOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldSnow, v)
}

// SnowdepthOnDay returns the snow depth of a day.
func (w *Weather) SnowdepthOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldSnowdepth))
}

// SetSnowdepthOnDay sets the snow depth of a day.
func (w *Weather) SetSnowdepthOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldSnowdepth, v)
}

// WindgustOnDay returns the wind gust speed of a day.
func (w *Weather) WindgustOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldWindgust))
}

// SetWindgustOnDay sets the wind gust speed of a day.
func (w *Weather) SetWindgustOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldWindgust, v)
}

// WindspeedOnDay returns the sustained wind speed of a day.
func (w *Weather) WindspeedOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldWindspeed))
}

// SetWindspeedOnDay sets the sustained wind speed of a day.
func (w *Weather) SetWindspeedOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldWindspeed, v)
}

// WinddirOnDay returns the wind direction in degrees of a day.
func (w *Weather) WinddirOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldWinddir))
}

// SetWinddirOnDay sets the wind direction in degrees of a day.
func (w *Weather) SetWinddirOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldWinddir, v)
}

// PressureOnDay returns the sea level pressure of a day.
func (w *Weather) PressureOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldPressure))
}

// SetPressureOnDay sets the sea level pressure of a day.
func (w *Weather) SetPressureOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldPressure, v)
}

// CloudcoverOnDay returns the cloud cover in percent of a day.
func (w *Weather) CloudcoverOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldCloudcover))
}

// SetCloudcoverOnDay sets the cloud cover in percent of a day.
func (w *Weather) SetCloudcoverOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldCloudcover, v)
}

// VisibilityOnDay returns the visibility distance of a day.
func (w *Weather) VisibilityOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldVisibility))
}

// SetVisibilityOnDay sets the visibility distance of a day.
func (w *Weather) SetVisibilityOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldVisibility, v)
}

// SolarradiationOnDay returns the solar radiation of a day.
func (w *Weather) SolarradiationOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldSolarradiation))
}

// SetSolarradiationOnDay sets the solar radiation of a day.
func (w *Weather) SetSolarradiationOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldSolarradiation, v)
}

// SolarenergyOnDay returns the solar energy of a day.
func (w *Weather) SolarenergyOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldSolarenergy))
}

// SetSolarenergyOnDay sets the solar energy of a day.
func (w *Weather) SetSolarenergyOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldSolarenergy, v)
}

// UVIndexOnDay returns the UV index of a day.
func (w *Weather) UVIndexOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldUVIndex))
}

// SetUVIndexOnDay sets the UV index of a day.
func (w *Weather) SetUVIndexOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldUVIndex, v)
}

// SevereriskOnDay returns the severe weather risk of a day.
func (w *Weather) SevereriskOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldSevererisk))
}

// SetSevereriskOnDay sets the severe weather risk of a day.
func (w *Weather) SetSevereriskOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldSevererisk, v)
}

// SunriseOnDay returns the local sunrise time of a day.
func (w *Weather) SunriseOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldSunrise))
}

// SetSunriseOnDay sets the local sunrise time of a day.
func (w *Weather) SetSunriseOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldSunrise, v)
}

// SunriseEpochOnDay returns the Unix sunrise time of a day.
func (w *Weather) SunriseEpochOnDay(day records.Locator) (int64, bool) {
	return intValue(w.ValueOnDay(day, FieldSunriseEpoch))
}

// SetSunriseEpochOnDay sets the Unix sunrise time of a day.
func (w *Weather) SetSunriseEpochOnDay(day records.Locator, v int64) error {
	return w.SetValueOnDay(day, FieldSunriseEpoch, v)
}

// SunsetOnDay returns the local sunset time of a day.
func (w *Weather) SunsetOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldSunset))
}

// SetSunsetOnDay sets the local sunset time of a day.
func (w *Weather) SetSunsetOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldSunset, v)
}

// SunsetEpochOnDay returns the Unix sunset time of a day.
func (w *Weather) SunsetEpochOnDay(day records.Locator) (int64, bool) {
	return intValue(w.ValueOnDay(day, FieldSunsetEpoch))
}

// SetSunsetEpochOnDay sets the Unix sunset time of a day.
func (w *Weather) SetSunsetEpochOnDay(day records.Locator, v int64) error {
	return w.SetValueOnDay(day, FieldSunsetEpoch, v)
}

// MoonphaseOnDay returns the moon phase, 0 to 1 of a day.
func (w *Weather) MoonphaseOnDay(day records.Locator) (float64, bool) {
	return floatValue(w.ValueOnDay(day, FieldMoonphase))
}

// SetMoonphaseOnDay sets the moon phase, 0 to 1 of a day.
func (w *Weather) SetMoonphaseOnDay(day records.Locator, v float64) error {
	return w.SetValueOnDay(day, FieldMoonphase, v)
}

// ConditionsOnDay returns the short conditions text of a day.
func (w *Weather) ConditionsOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldConditions))
}

// SetConditionsOnDay sets the short conditions text of a day.
func (w *Weather) SetConditionsOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldConditions, v)
}

// DescriptionOnDay returns the longer weather description of a day.
func (w *Weather) DescriptionOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldDescription))
}

// SetDescriptionOnDay sets the longer weather description of a day.
func (w *Weather) SetDescriptionOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldDescription, v)
}

// IconOnDay returns the weather icon name of a day.
func (w *Weather) IconOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldIcon))
}

// SetIconOnDay sets the weather icon name of a day.
func (w *Weather) SetIconOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldIcon, v)
}

// StationsOnDay returns the contributing station IDs of a day.
func (w *Weather) StationsOnDay(day records.Locator) ([]string, bool) {
	return stringsValue(w.ValueOnDay(day, FieldStations))
}

// SetStationsOnDay sets the contributing station IDs of a day.
func (w *Weather) SetStationsOnDay(day records.Locator, v []string) error {
	return w.SetValueOnDay(day, FieldStations, v)
}

// SourceOnDay returns the data source tag (obs, fcst, histfcst, stats or comb) of a day.
func (w *Weather) SourceOnDay(day records.Locator) (string, bool) {
	return stringValue(w.ValueOnDay(day, FieldSource))
}

// SetSourceOnDay sets the data source tag (obs, fcst, histfcst, stats or comb) of a day.
func (w *Weather) SetSourceOnDay(day records.Locator, v string) error {
	return w.SetValueOnDay(day, FieldSource, v)
}

// DatetimeEpochAtDatetime returns the Unix time of an hour.
func (w *Weather) DatetimeEpochAtDatetime(day, hour records.Locator) (int64, bool) {
	return intValue(w.ValueAtDatetime(day, hour, FieldDatetimeEpoch))
}

// SetDatetimeEpochAtDatetime sets the Unix time of an hour.
func (w *Weather) SetDatetimeEpochAtDatetime(day, hour records.Locator, v int64) error {
	return w.SetValueAtDatetime(day, hour, FieldDatetimeEpoch, v)
}

// TempAtDatetime returns the temperature of an hour.
func (w *Weather) TempAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldTemp))
}

// SetTempAtDatetime sets the temperature of an hour.
func (w *Weather) SetTempAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldTemp, v)
}

// FeelslikeAtDatetime returns the feels-like temperature of an hour.
func (w *Weather) FeelslikeAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldFeelslike))
}

// SetFeelslikeAtDatetime sets the feels-like temperature of an hour.
func (w *Weather) SetFeelslikeAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldFeelslike, v)
}

// DewAtDatetime returns the dew point of an hour.
func (w *Weather) DewAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldDew))
}

// SetDewAtDatetime sets the dew point of an hour.
func (w *Weather) SetDewAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldDew, v)
}

// HumidityAtDatetime returns the relative humidity in percent of an hour.
func (w *Weather) HumidityAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldHumidity))
}

// SetHumidityAtDatetime sets the relative humidity in percent of an hour.
func (w *Weather) SetHumidityAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldHumidity, v)
}

// PrecipAtDatetime returns the precipitation amount of an hour.
func (w *Weather) PrecipAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldPrecip))
}

// SetPrecipAtDatetime sets the precipitation amount of an hour.
func (w *Weather) SetPrecipAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldPrecip, v)
}

// PrecipprobAtDatetime returns the chance of precipitation in percent of an hour.
func (w *Weather) PrecipprobAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldPrecipprob))
}

// SetPrecipprobAtDatetime sets the chance of precipitation in percent of an hour.
func (w *Weather) SetPrecipprobAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldPrecipprob, v)
}

// PreciptypeAtDatetime returns the precipitation types of an hour.
func (w *Weather) PreciptypeAtDatetime(day, hour records.Locator) ([]string, bool) {
	return stringsValue(w.ValueAtDatetime(day, hour, FieldPreciptype))
}

// SetPreciptypeAtDatetime sets the precipitation types of an hour.
func (w *Weather) SetPreciptypeAtDatetime(day, hour records.Locator, v []string) error {
	return w.SetValueAtDatetime(day, hour, FieldPreciptype, v)
}

// SnowAtDatetime returns the snowfall of an hour.
func (w *Weather) SnowAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldSnow))
}

// SetSnowAtDatetime sets the snowfall of an hour.
func (w *Weather) SetSnowAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldSnow, v)
}

// SnowdepthAtDatetime returns the snow depth of an hour.
func (w *Weather) SnowdepthAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldSnowdepth))
}

// SetSnowdepthAtDatetime sets the snow depth of an hour.
func (w *Weather) SetSnowdepthAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldSnowdepth, v)
}

// WindgustAtDatetime returns the wind gust speed of an hour.
func (w *Weather) WindgustAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldWindgust))
}

// SetWindgustAtDatetime sets the wind gust speed of an hour.
func (w *Weather) SetWindgustAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldWindgust, v)
}

// WindspeedAtDatetime returns the sustained wind speed of an hour.
func (w *Weather) WindspeedAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldWindspeed))
}

// SetWindspeedAtDatetime sets the sustained wind speed of an hour.
func (w *Weather) SetWindspeedAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldWindspeed, v)
}

// WinddirAtDatetime returns the wind direction in degrees of an hour.
func (w *Weather) WinddirAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldWinddir))
}

// SetWinddirAtDatetime sets the wind direction in degrees of an hour.
func (w *Weather) SetWinddirAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldWinddir, v)
}

// PressureAtDatetime returns the sea level pressure of an hour.
func (w *Weather) PressureAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldPressure))
}

// SetPressureAtDatetime sets the sea level pressure of an hour.
func (w *Weather) SetPressureAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldPressure, v)
}

// CloudcoverAtDatetime returns the cloud cover in percent of an hour.
func (w *Weather) CloudcoverAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldCloudcover))
}

// SetCloudcoverAtDatetime sets the cloud cover in percent of an hour.
func (w *Weather) SetCloudcoverAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldCloudcover, v)
}

// VisibilityAtDatetime returns the visibility distance of an hour.
func (w *Weather) VisibilityAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldVisibility))
}

// SetVisibilityAtDatetime sets the visibility distance of an hour.
func (w *Weather) SetVisibilityAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldVisibility, v)
}

// SolarradiationAtDatetime returns the solar radiation of an hour.
func (w *Weather) SolarradiationAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldSolarradiation))
}

// SetSolarradiationAtDatetime sets the solar radiation of an hour.
func (w *Weather) SetSolarradiationAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldSolarradiation, v)
}

// SolarenergyAtDatetime returns the solar energy of an hour.
func (w *Weather) SolarenergyAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldSolarenergy))
}

// SetSolarenergyAtDatetime sets the solar energy of an hour.
func (w *Weather) SetSolarenergyAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldSolarenergy, v)
}

// UVIndexAtDatetime returns the UV index of an hour.
func (w *Weather) UVIndexAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldUVIndex))
}

// SetUVIndexAtDatetime sets the UV index of an hour.
func (w *Weather) SetUVIndexAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldUVIndex, v)
}

// SevereriskAtDatetime returns the severe weather risk of an hour.
func (w *Weather) SevereriskAtDatetime(day, hour records.Locator) (float64, bool) {
	return floatValue(w.ValueAtDatetime(day, hour, FieldSevererisk))
}

// SetSevereriskAtDatetime sets the severe weather risk of an hour.
func (w *Weather) SetSevereriskAtDatetime(day, hour records.Locator, v float64) error {
	return w.SetValueAtDatetime(day, hour, FieldSevererisk, v)
}

// ConditionsAtDatetime returns the short conditions text of an hour.
func (w *Weather) ConditionsAtDatetime(day, hour records.Locator) (string, bool) {
	return stringValue(w.ValueAtDatetime(day, hour, FieldConditions))
}

// SetConditionsAtDatetime sets the short conditions text of an hour.
func (w *Weather) SetConditionsAtDatetime(day, hour records.Locator, v string) error {
	return w.SetValueAtDatetime(day, hour, FieldConditions, v)
}

// IconAtDatetime returns the weather icon name of an hour.
func (w *Weather) IconAtDatetime(day, hour records.Locator) (string, bool) {
	return stringValue(w.ValueAtDatetime(day, hour, FieldIcon))
}

// SetIconAtDatetime sets the weather icon name of an hour.
func (w *Weather) SetIconAtDatetime(day, hour records.Locator, v string) error {
	return w.SetValueAtDatetime(day, hour, FieldIcon, v)
}

// StationsAtDatetime returns the contributing station IDs of an hour.
func (w *Weather) StationsAtDatetime(day, hour records.Locator) ([]string, bool) {
	return stringsValue(w.ValueAtDatetime(day, hour, FieldStations))
}

// SetStationsAtDatetime sets the contributing station IDs of an hour.
func (w *Weather) SetStationsAtDatetime(day, hour records.Locator, v []string) error {
	return w.SetValueAtDatetime(day, hour, FieldStations, v)
}

// SourceAtDatetime returns the data source tag of an hour.
func (w *Weather) SourceAtDatetime(day, hour records.Locator) (string, bool) {
	return stringValue(w.ValueAtDatetime(day, hour, FieldSource))
}

// SetSourceAtDatetime sets the data source tag of an hour.
func (w *Weather) SetSourceAtDatetime(day, hour records.Locator, v string) error {
	return w.SetValueAtDatetime(day, hour, FieldSource, v)
}
