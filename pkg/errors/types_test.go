package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := DecodeError("bad prefix", nil)
	wrapped := fmt.Errorf("navigating: %w", err)

	assert.True(t, stderrors.Is(wrapped, ErrDecode))
	assert.False(t, stderrors.Is(wrapped, ErrParse))
	assert.True(t, Is(wrapped, ErrCodeDecode))
}

func TestAppError_ErrorString(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := TransportError("http://x/best_podcasts", cause)

	assert.Contains(t, err.Error(), "TRANSPORT")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "http://x/best_podcasts", err.Details["endpoint"])
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	appErr := ResponseError("http://x", 500)
	assert.Same(t, appErr, From(fmt.Errorf("outer: %w", appErr)))

	plain := stderrors.New("boom")
	converted := From(plain)
	assert.Equal(t, ErrCodeInternal, converted.Code)
	assert.ErrorIs(t, converted, plain)
}

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"decode", DecodeError("x", nil), http.StatusBadRequest},
		{"transport", TransportError("x", nil), http.StatusBadGateway},
		{"response", ResponseError("x", 503), http.StatusBadGateway},
		{"conflict", New(ErrCodeConflict, "busy"), http.StatusConflict},
		{"rate limit", New(ErrCodeRateLimit, "slow down"), http.StatusTooManyRequests},
		{"config", ConfigError("server.port", "out of range"), http.StatusInternalServerError},
		{"plain error", stderrors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}
