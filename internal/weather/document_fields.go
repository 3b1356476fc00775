package weather

import (
	"encoding/json"
	"fmt"
)

// QueryCost returns the cost of the request that produced the document.
func (w *Weather) QueryCost() (float64, bool) { return floatValue(w.get(FieldQueryCost)) }

// SetQueryCost sets the query cost.
func (w *Weather) SetQueryCost(v float64) { w.set(FieldQueryCost, v) }

// Latitude returns the latitude of the resolved location.
func (w *Weather) Latitude() (float64, bool) { return floatValue(w.get(FieldLatitude)) }

// SetLatitude sets the latitude.
func (w *Weather) SetLatitude(v float64) { w.set(FieldLatitude, v) }

// Longitude returns the longitude of the resolved location.
func (w *Weather) Longitude() (float64, bool) { return floatValue(w.get(FieldLongitude)) }

// SetLongitude sets the longitude.
func (w *Weather) SetLongitude(v float64) { w.set(FieldLongitude, v) }

// ResolvedAddress returns the address the API matched the location to.
func (w *Weather) ResolvedAddress() (string, bool) { return stringValue(w.get(FieldResolvedAddress)) }

// SetResolvedAddress sets the resolved address.
func (w *Weather) SetResolvedAddress(v string) { w.set(FieldResolvedAddress, v) }

// Address returns the location as it was requested.
func (w *Weather) Address() (string, bool) { return stringValue(w.get(FieldAddress)) }

// SetAddress sets the requested address.
func (w *Weather) SetAddress(v string) { w.set(FieldAddress, v) }

// Timezone returns the IANA timezone of the location.
func (w *Weather) Timezone() (string, bool) { return stringValue(w.get(FieldTimezone)) }

// SetTimezone sets the timezone.
func (w *Weather) SetTimezone(v string) { w.set(FieldTimezone, v) }

// TzOffset returns the UTC offset of the location in hours.
func (w *Weather) TzOffset() (float64, bool) { return floatValue(w.get(FieldTzOffset)) }

// SetTzOffset sets the UTC offset.
func (w *Weather) SetTzOffset(v float64) { w.set(FieldTzOffset, v) }

// Stations returns the raw stations element of the document.
func (w *Weather) Stations() any { return w.get(FieldStations) }

// SetStations sets the stations element.
func (w *Weather) SetStations(v any) { w.set(FieldStations, v) }

// StationInfo decodes the stations element, keyed by station ID.
func (w *Weather) StationInfo() (map[string]Station, error) {
	raw, ok := w.data[string(FieldStations)]
	if !ok || raw == nil {
		return map[string]Station{}, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var out map[string]Station
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	return out, nil
}
