package listennotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/killallgit/podcast-browser/internal/models"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bestPodcastsResponse = `{
	"id": 93,
	"name": "Personal Finance",
	"podcasts": [
		{
			"id": "4d3fe717742d4963a85562e9f84d8c79",
			"title": "Star Wars 7x7",
			"publisher": "Allen Voivod",
			"image": "https://cdn.example.com/a.jpg",
			"description": "<p>Daily Star Wars</p>",
			"total_episodes": 1600
		},
		{
			"id": "b1",
			"title": "",
			"publisher": "",
			"image": "",
			"description": ""
		}
	],
	"has_next": true
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, "https://listen-api-test.listennotes.com/api/v2/best_podcasts", client.url)
	assert.Equal(t, "podcasts", client.envelopeField)
	assert.Equal(t, "PodcastBrowser/1.0", client.userAgent)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
}

func TestFetchTopItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/best_podcasts", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-ListenAPI-Key"))
		assert.Equal(t, "TestAgent/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bestPodcastsResponse))
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:   server.URL + "/api/v2/",
		APIKey:    "test-key",
		UserAgent: "TestAgent/1.0",
		Timeout:   5 * time.Second,
	})

	envelope, err := client.FetchTopItems(context.Background())
	require.NoError(t, err)
	require.Len(t, envelope.Podcasts, 2)

	assert.Equal(t, models.Podcast{
		ID:          "4d3fe717742d4963a85562e9f84d8c79",
		Title:       "Star Wars 7x7",
		Publisher:   "Allen Voivod",
		Image:       "https://cdn.example.com/a.jpg",
		Description: "<p>Daily Star Wars</p>",
	}, envelope.Podcasts[0])
	assert.Equal(t, models.Podcast{ID: "b1"}, envelope.Podcasts[1])
}

func TestFetchTopItems_NoAPIKeyHeaderWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Listenapi-Key"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"podcasts":[]}`))
	}))
	defer server.Close()

	envelope, err := NewClient(Config{BaseURL: server.URL}).FetchTopItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, envelope.Podcasts)
	assert.NotNil(t, envelope.Podcasts)
}

func TestFetchTopItems_CustomEnvelopeField(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"items":[{"id":"p1","title":"Show A","publisher":"Pub A","image":"http://x/a.png","description":"<b>hi</b>"}]}`)

	client := NewClient(Config{BaseURL: server.URL, EnvelopeField: "items"})
	envelope, err := client.FetchTopItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Podcast{{
		ID: "p1", Title: "Show A", Publisher: "Pub A", Image: "http://x/a.png", Description: "<b>hi</b>",
	}}, envelope.Podcasts)
}

func TestFetchTopItems_WhitespaceIDIsKept(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"podcasts":[{"id":" ","title":"Blank","publisher":"","image":"","description":""}]}`)

	envelope, err := NewClient(Config{BaseURL: server.URL}).FetchTopItems(context.Background())
	require.NoError(t, err)
	require.Len(t, envelope.Podcasts, 1)
	assert.Equal(t, " ", envelope.Podcasts[0].ID)
}

func TestFetchTopItems_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *apperrors.AppError
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, apperrors.ErrResponse},
		{"unauthorized", http.StatusUnauthorized, ``, apperrors.ErrResponse},
		{"malformed json", http.StatusOK, `{"podcasts": [`, apperrors.ErrParse},
		{"not an object", http.StatusOK, `[1,2,3]`, apperrors.ErrParse},
		{"missing envelope field", http.StatusOK, `{"results":[]}`, apperrors.ErrParse},
		{"null envelope field", http.StatusOK, `{"podcasts":null}`, apperrors.ErrParse},
		{"envelope field is not an array", http.StatusOK, `{"podcasts":{"id":"x"}}`, apperrors.ErrParse},
		{"missing item field", http.StatusOK,
			`{"podcasts":[{"id":"p1","title":"t","publisher":"p","image":"i"}]}`, apperrors.ErrParse},
		{"mismatched item field", http.StatusOK,
			`{"podcasts":[{"id":7,"title":"t","publisher":"p","image":"i","description":"d"}]}`, apperrors.ErrParse},
		{"empty id", http.StatusOK,
			`{"podcasts":[{"id":"","title":"t","publisher":"p","image":"i","description":"d"}]}`, apperrors.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.body)

			envelope, err := NewClient(Config{BaseURL: server.URL}).FetchTopItems(context.Background())

			assert.Nil(t, envelope)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchTopItems_TransportErrors(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewClient(Config{BaseURL: url}).FetchTopItems(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
		_, err := client.FetchTopItems(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"podcasts":[]}`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewClient(Config{BaseURL: server.URL}).FetchTopItems(ctx)
		assert.ErrorIs(t, err, apperrors.ErrTransport)
	})
}
