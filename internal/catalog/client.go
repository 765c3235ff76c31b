// Package catalog relays products from a remote catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
)

// Config controls how the client reaches the catalog.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Client fetches the product list from the catalog. Responses are relayed
// as raw JSON objects; there is no retry and no caching.
type Client struct {
	baseURL    string
	httpClient httpDoer
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

type productsResponse struct {
	Products []json.RawMessage `json:"products"`
}

// NewClient constructs a catalog client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		limiter:    resolveLimiter(cfg.RatePerSecond, cfg.Burst),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// Products fetches {base}/products and returns each product object verbatim.
func (c *Client) Products(ctx context.Context) ([]json.RawMessage, error) {
	if c == nil || c.httpClient == nil {
		return nil, ErrUnavailable
	}
	logger := logging.FromContext(ctx, c.logger)

	if err := c.throttle(ctx); err != nil {
		logging.Warn(logger, "catalog fetch canceled while throttled",
			logging.FieldUpstream, upstreamName,
			"error", err,
		)
		return nil, err
	}

	start := c.now()
	items, err := c.fetch(ctx)
	elapsed := c.now().Sub(start)
	c.metrics.RecordUpstreamAttempt(upstreamName, elapsed, err)
	if err != nil {
		logging.Warn(logger, "catalog fetch failed",
			logging.FieldUpstream, upstreamName,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	logging.Debug(logger, "catalog fetch complete",
		logging.FieldUpstream, upstreamName,
		logging.FieldCount, len(items),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return items, nil
}

func (c *Client) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	start := c.now()
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	c.metrics.RecordThrottleWait(upstreamName, c.now().Sub(start))
	return nil
}

func (c *Client) fetch(ctx context.Context) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Products == nil {
		return []json.RawMessage{}, nil
	}
	return payload.Products, nil
}
