package listennotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/killallgit/podcast-browser/internal/models"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL       = "https://listen-api-test.listennotes.com/api/v2"
	defaultEndpoint      = "best_podcasts"
	defaultEnvelopeField = "podcasts"
	defaultUserAgent     = "PodcastBrowser/1.0"

	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 10 << 20
)

// Config holds configuration for the Listen Notes client
type Config struct {
	BaseURL       string
	Endpoint      string
	EnvelopeField string // name of the array member holding the podcasts
	APIKey        string // sent as X-ListenAPI-Key when set
	UserAgent     string
	Timeout       time.Duration
	RateLimit     float64 // requests per second
}

// Client fetches the best-podcasts catalog
type Client struct {
	httpClient    *http.Client
	rateLimiter   *rate.Limiter
	url           string
	envelopeField string
	apiKey        string
	userAgent     string
}

// NewClient creates a new Listen Notes client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.EnvelopeField == "" {
		cfg.EnvelopeField = defaultEnvelopeField
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2
	}

	return &Client{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		rateLimiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		url:           strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(cfg.Endpoint, "/"),
		envelopeField: cfg.EnvelopeField,
		apiKey:        cfg.APIKey,
		userAgent:     cfg.UserAgent,
	}
}

// FetchTopItems performs one GET against the best-podcasts resource. It
// blocks until the round trip completes or ctx is done. Failures are
// *errors.AppError values with code TRANSPORT, RESPONSE or PARSE.
func (c *Client) FetchTopItems(ctx context.Context) (*Envelope, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, apperrors.TransportError(c.url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.TransportError(c.url, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-ListenAPI-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.TransportError(c.url, fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":      c.url,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("Catalog request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, apperrors.ResponseError(c.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.TransportError(c.url, fmt.Errorf("reading response: %w", err))
	}

	return parseEnvelope(body, c.envelopeField)
}

// parseEnvelope maps the response body onto an Envelope
func parseEnvelope(body []byte, field string) (*Envelope, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.ParseError("response is not a JSON object", err)
	}

	array, ok := raw[field]
	if !ok {
		return nil, apperrors.ParseError(fmt.Sprintf("missing %q array", field), nil)
	}

	var wire []wirePodcast
	if err := json.Unmarshal(array, &wire); err != nil {
		return nil, apperrors.ParseError(fmt.Sprintf("%q is not an array of podcasts", field), err)
	}
	if wire == nil {
		return nil, apperrors.ParseError(fmt.Sprintf("%q is null", field), nil)
	}

	podcasts := make([]models.Podcast, 0, len(wire))
	for i, w := range wire {
		p, err := w.toPodcast()
		if err != nil {
			return nil, apperrors.ParseError(fmt.Sprintf("podcast %d: %s", i, err), nil).
				WithDetail("index", i)
		}
		podcasts = append(podcasts, p)
	}

	return &Envelope{Podcasts: podcasts}, nil
}

func (w wirePodcast) toPodcast() (models.Podcast, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"id", w.ID},
		{"title", w.Title},
		{"publisher", w.Publisher},
		{"image", w.Image},
		{"description", w.Description},
	}
	for _, f := range fields {
		if f.value == nil {
			return models.Podcast{}, fmt.Errorf("missing field %q", f.name)
		}
	}

	p := models.Podcast{
		ID:          *w.ID,
		Title:       *w.Title,
		Publisher:   *w.Publisher,
		Image:       *w.Image,
		Description: *w.Description,
	}
	if !p.Valid() {
		return models.Podcast{}, fmt.Errorf("empty id")
	}
	return p, nil
}
