package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/vcweather/internal/records"
	"github.com/i474232898/vcweather/internal/weather"
)

// DefaultBaseURL is the Visual Crossing timeline endpoint.
const DefaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

var errNoAPIKey = errors.New("visual crossing api key is not configured")

// Options tunes a VisualCrossingProvider. The zero value talks to DefaultBaseURL
// without throttling and without retries.
type Options struct {
	BaseURL           string
	RequestsPerSecond float64
	Burst             int
	Backoff           BackoffConfig
}

// VisualCrossingProvider implements weather.Source for the Visual Crossing timeline API.
type VisualCrossingProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewVisualCrossingProvider(client *http.Client, apiKey string, opts Options) *VisualCrossingProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "visualcrossing",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit, burst := rate.Inf, opts.Burst
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}

	return &VisualCrossingProvider{
		name:    "visualcrossing",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Limiter: rate.NewLimiter(limit, burst),
			Backoff: opts.Backoff,
		},
		circuit: cb,
	}
}

func (p *VisualCrossingProvider) Name() string {
	return p.name
}

// Fetch requests the timeline document for q and decodes it. Non-2xx responses
// are returned as *APIError.
func (p *VisualCrossingProvider) Fetch(ctx context.Context, q weather.Query) (records.Record, error) {
	if p.apiKey == "" {
		return nil, errNoAPIKey
	}
	q = q.WithDefaults()

	u, err := p.requestURL(q)
	if err != nil {
		return nil, err
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc records.Record
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode timeline response: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode timeline response: %w", records.ErrInvalidData)
	}
	return doc, nil
}

// requestURL builds {base}/{location}[/{from}[/{to}]] with the query parameters.
func (p *VisualCrossingProvider) requestURL(q weather.Query) (string, error) {
	if q.Location == "" {
		return "", fmt.Errorf("location is required")
	}

	path := p.baseURL + "/" + url.PathEscape(q.Location)
	if q.From != "" {
		path += "/" + url.PathEscape(q.From)
		if q.To != "" {
			path += "/" + url.PathEscape(q.To)
		}
	}

	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	values := url.Values{}
	values.Set("unitGroup", string(q.UnitGroup))
	values.Set("include", q.Include)
	values.Set("key", p.apiKey)
	if len(q.Elements) > 0 {
		values.Set("elements", strings.Join(q.Elements, ","))
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}
