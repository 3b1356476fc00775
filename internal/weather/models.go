package weather

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// UnitGroup selects the unit system of a timeline request.
type UnitGroup string

const (
	UnitGroupUS     UnitGroup = "us"
	UnitGroupMetric UnitGroup = "metric"
	UnitGroupUK     UnitGroup = "uk"
	UnitGroupBase   UnitGroup = "base"
)

// DefaultInclude is the granularity requested when a Query names none.
const DefaultInclude = "days"

var validate = validator.New()

var errToWithoutFrom = errors.New("to date requires a from date")

// Query describes one timeline request: a location and an optional date range.
// Without dates the API returns its 15 day forecast.
type Query struct {
	Location  string    `json:"location" toml:"location" validate:"required"`
	From      string    `json:"from,omitempty" toml:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string    `json:"to,omitempty" toml:"to" validate:"omitempty,datetime=2006-01-02"`
	UnitGroup UnitGroup `json:"unitGroup,omitempty" toml:"unit_group" validate:"omitempty,oneof=us metric uk base"`
	Include   string    `json:"include,omitempty" toml:"include"`
	Elements  []string  `json:"elements,omitempty" toml:"elements"`
}

// WithDefaults fills the unit group and include parameters when unset.
func (q Query) WithDefaults() Query {
	q.Location = strings.TrimSpace(q.Location)
	if q.UnitGroup == "" {
		q.UnitGroup = UnitGroupUS
	}
	if q.Include == "" {
		q.Include = DefaultInclude
	}
	return q
}

// Validate checks the query before it is sent upstream.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	if q.To != "" && q.From == "" {
		return errToWithoutFrom
	}
	return nil
}

// Station describes one entry of the document's stations object.
type Station struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Distance     float64 `json:"distance"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	UseCount     int     `json:"useCount"`
	Quality      int     `json:"quality"`
	Contribution float64 `json:"contribution"`
}

// Entry is a stored document together with the query that produced it.
type Entry struct {
	ID        string    `json:"id"`
	Query     Query     `json:"query"`
	FetchedAt time.Time `json:"fetchedAt"`

	Weather *Weather `json:"-"`
}
