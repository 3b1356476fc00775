package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/vcweather/internal/records"
	"github.com/i474232898/vcweather/internal/store"
	"github.com/i474232898/vcweather/internal/weather"
	"github.com/i474232898/vcweather/internal/weather/providers"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	h := &handler{service: service}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "vcweather",
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/locations/latest", h.latest)

	docs := v1.Group("/documents")
	docs.Post("/", h.create)
	docs.Post("/import", h.importDocument)
	docs.Get("/", h.list)
	docs.Get("/:id", h.get)
	docs.Delete("/:id", h.remove)
	docs.Get("/:id/days", h.days)
	docs.Get("/:id/hours", h.hours)
	docs.Get("/:id/datetimes/daily", h.dailyDatetimes)
	docs.Get("/:id/datetimes/hourly", h.hourlyDatetimes)

	docs.Get("/:id/days/:day", h.getDay)
	docs.Put("/:id/days/:day", h.writeDay(false))
	docs.Patch("/:id/days/:day", h.writeDay(true))
	docs.Get("/:id/days/:day/fields/:field", h.getDayField)
	docs.Put("/:id/days/:day/fields/:field", h.setDayField)

	docs.Get("/:id/days/:day/hours", h.getHourly)
	docs.Put("/:id/days/:day/hours", h.setHourly)
	docs.Get("/:id/days/:day/hours/:hour", h.getHour)
	docs.Put("/:id/days/:day/hours/:hour", h.writeHour(false))
	docs.Patch("/:id/days/:day/hours/:hour", h.writeHour(true))
	docs.Get("/:id/days/:day/hours/:hour/fields/:field", h.getHourField)
	docs.Put("/:id/days/:day/hours/:hour/fields/:field", h.setHourField)
}

type handler struct {
	service *weather.Service
}

// entryView is the listing shape of a stored document.
type entryView struct {
	ID        string        `json:"id"`
	Query     weather.Query `json:"query"`
	FetchedAt string        `json:"fetchedAt"`
}

func newEntryView(e weather.Entry) entryView {
	return entryView{ID: e.ID, Query: e.Query, FetchedAt: e.FetchedAt.Format(time.RFC3339)}
}

// fieldValue is the body of field reads and writes.
type fieldValue struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// latestQuery holds query parameters for the latest document lookup.
type latestQuery struct {
	Location string `validate:"required"`
}

func (h *handler) create(c *fiber.Ctx) error {
	var q weather.Query
	if err := c.BodyParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := q.WithDefaults().Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entry, err := h.service.FetchAndStore(c.UserContext(), q)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(newEntryView(entry))
}

func (h *handler) importDocument(c *fiber.Ctx) error {
	entry, err := h.service.Import(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(newEntryView(entry))
}

func (h *handler) list(c *fiber.Ctx) error {
	entries := h.service.List()
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, newEntryView(e))
	}
	return c.JSON(out)
}

func (h *handler) latest(c *fiber.Ctx) error {
	q := latestQuery{Location: strings.TrimSpace(c.Query("location"))}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Latest(q.Location)
	if err != nil {
		return toHTTPError(err)
	}
	return h.view(c, entry.ID, func(w *weather.Weather) error {
		return c.JSON(fiber.Map{
			"entry":    newEntryView(entry),
			"document": w.Data(elements(c)...),
		})
	})
}

func (h *handler) get(c *fiber.Ctx) error {
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		return c.JSON(w.Data(elements(c)...))
	})
}

func (h *handler) remove(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return toHTTPError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handler) days(c *fiber.Ctx) error {
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		return c.JSON(nonNil(w.Days(elements(c)...)))
	})
}

func (h *handler) hours(c *fiber.Ctx) error {
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		return c.JSON(nonNil(w.Hours(elements(c)...)))
	})
}

func (h *handler) dailyDatetimes(c *fiber.Ctx) error {
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		times, err := w.DailyDatetimes()
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return c.JSON(times)
	})
}

func (h *handler) hourlyDatetimes(c *fiber.Ctx) error {
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		times, err := w.HourlyDatetimes()
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return c.JSON(times)
	})
}

func (h *handler) getDay(c *fiber.Ctx) error {
	day := locator(c, "day")
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		rec, err := w.DataOnDay(day, elements(c)...)
		if err != nil {
			return err
		}
		if rec == nil {
			return notFound("day", day)
		}
		return c.JSON(rec)
	})
}

// writeDay replaces the addressed day, or merges into it when merge is set,
// and responds with the resulting record.
func (h *handler) writeDay(merge bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := locator(c, "day")
		data, err := decodeRecord(c.Body())
		if err != nil {
			return err
		}
		return h.view(c, c.Params("id"), func(w *weather.Weather) error {
			write := w.SetDataOnDay
			if merge {
				write = w.UpdateDataOnDay
			}
			if err := write(day, data); err != nil {
				return err
			}
			rec, err := w.DataOnDay(day)
			if err != nil {
				return err
			}
			if rec == nil {
				return notFound("day", day)
			}
			return c.JSON(rec)
		})
	}
}

func (h *handler) getDayField(c *fiber.Ctx) error {
	day := locator(c, "day")
	field, err := weather.ParseDayField(param(c, "field"))
	if err != nil {
		return toHTTPError(err)
	}
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		rec, err := w.DataOnDay(day)
		if err != nil {
			return err
		}
		if rec == nil {
			return notFound("day", day)
		}
		if _, ok := rec[string(field)]; !ok {
			return notFound(string(field)+" on day", day)
		}
		return c.JSON(fieldValue{Field: string(field), Value: w.ValueOnDay(day, field)})
	})
}

func (h *handler) setDayField(c *fiber.Ctx) error {
	day := locator(c, "day")
	field := weather.Field(param(c, "field"))
	var body fieldValue
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		if err := w.SetValueOnDay(day, field, body.Value); err != nil {
			return err
		}
		if rec, _ := w.DataOnDay(day); rec == nil {
			return notFound("day", day)
		}
		return c.JSON(fieldValue{Field: string(field), Value: w.ValueOnDay(day, field)})
	})
}

func (h *handler) getHourly(c *fiber.Ctx) error {
	day := locator(c, "day")
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		if rec, err := w.DataOnDay(day); err != nil {
			return err
		} else if rec == nil {
			return notFound("day", day)
		}
		hours, err := w.HourlyOnDay(day, elements(c)...)
		if err != nil {
			return err
		}
		return c.JSON(nonNil(hours))
	})
}

func (h *handler) setHourly(c *fiber.Ctx) error {
	day := locator(c, "day")
	var hours []records.Record
	if err := json.Unmarshal(c.Body(), &hours); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		if err := w.SetHourlyOnDay(day, hours); err != nil {
			return err
		}
		out, err := w.HourlyOnDay(day)
		if err != nil {
			return err
		}
		if out == nil {
			return notFound("day", day)
		}
		return c.JSON(out)
	})
}

func (h *handler) getHour(c *fiber.Ctx) error {
	day, hour := locator(c, "day"), locator(c, "hour")
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		rec, err := w.DataAtDatetime(day, hour, elements(c)...)
		if err != nil {
			return err
		}
		if rec == nil {
			return notFound("hour", hour)
		}
		return c.JSON(rec)
	})
}

func (h *handler) writeHour(merge bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, hour := locator(c, "day"), locator(c, "hour")
		data, err := decodeRecord(c.Body())
		if err != nil {
			return err
		}
		return h.view(c, c.Params("id"), func(w *weather.Weather) error {
			write := w.SetDataAtDatetime
			if merge {
				write = w.UpdateDataAtDatetime
			}
			if err := write(day, hour, data); err != nil {
				return err
			}
			rec, err := w.DataAtDatetime(day, hour)
			if err != nil {
				return err
			}
			if rec == nil {
				return notFound("hour", hour)
			}
			return c.JSON(rec)
		})
	}
}

func (h *handler) getHourField(c *fiber.Ctx) error {
	day, hour := locator(c, "day"), locator(c, "hour")
	field, err := weather.ParseHourField(param(c, "field"))
	if err != nil {
		return toHTTPError(err)
	}
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		rec, err := w.DataAtDatetime(day, hour)
		if err != nil {
			return err
		}
		if rec == nil {
			return notFound("hour", hour)
		}
		if _, ok := rec[string(field)]; !ok {
			return notFound(string(field)+" at hour", hour)
		}
		return c.JSON(fieldValue{Field: string(field), Value: w.ValueAtDatetime(day, hour, field)})
	})
}

func (h *handler) setHourField(c *fiber.Ctx) error {
	day, hour := locator(c, "day"), locator(c, "hour")
	field := weather.Field(param(c, "field"))
	var body fieldValue
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return h.view(c, c.Params("id"), func(w *weather.Weather) error {
		if err := w.SetValueAtDatetime(day, hour, field, body.Value); err != nil {
			return err
		}
		if rec, _ := w.DataAtDatetime(day, hour); rec == nil {
			return notFound("hour", hour)
		}
		return c.JSON(fieldValue{Field: string(field), Value: w.ValueAtDatetime(day, hour, field)})
	})
}

// view runs fn on the stored document id and maps any error to an HTTP error.
func (h *handler) view(c *fiber.Ctx, id string, fn func(*weather.Weather) error) error {
	if err := h.service.View(id, fn); err != nil {
		return toHTTPError(err)
	}
	return nil
}

// toHTTPError maps domain errors to fiber errors.
func toHTTPError(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	var apiErr *providers.APIError
	switch {
	case errors.Is(err, records.ErrInvalidLocator),
		errors.Is(err, records.ErrInvalidData),
		errors.Is(err, weather.ErrUnknownField):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, records.ErrNotFound),
		errors.Is(err, records.ErrIndexOutOfRange),
		errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &apiErr), errors.Is(err, providers.ErrCircuitOpen):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	case errors.Is(err, weather.ErrNoSource):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func notFound(what string, loc records.Locator) error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s %s not found", what, loc))
}

// locator reads a day or hour locator from the path. Integers address by
// position, anything else by datetime.
func locator(c *fiber.Ctx, name string) records.Locator {
	raw := param(c, name)
	if s, err := url.PathUnescape(raw); err == nil {
		raw = s
	}
	return records.ParseLocator(raw)
}

// param returns a copy of a path parameter. Fiber's values alias the request
// buffer, which is reused once the handler returns, and these end up stored
// in documents as keys.
func param(c *fiber.Ctx, name string) string {
	return utils.CopyString(c.Params(name))
}

// elements reads the comma separated elements query parameter.
func elements(c *fiber.Ctx) []string {
	var out []string
	for _, e := range strings.Split(c.Query("elements"), ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func decodeRecord(body []byte) (records.Record, error) {
	var rec records.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return rec, nil
}

func nonNil(recs []records.Record) []records.Record {
	if recs == nil {
		return []records.Record{}
	}
	return recs
}
