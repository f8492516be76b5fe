package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// bufferedWriter holds the response back until its ETag is known
type bufferedWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferedWriter) WriteHeader(status int) {
	if status > 0 {
		w.status = status
	}
}

func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	return w.body.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.body.Len() > 0
}

// ConditionalGet tags successful GET responses with an ETag over the body
// and answers 304 Not Modified when the client already holds that body.
// Snapshots of the podcast list change only when a fetch succeeds, so
// polling clients mostly get empty 304s.
func ConditionalGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		original := c.Writer
		w := &bufferedWriter{ResponseWriter: original, status: http.StatusOK}
		c.Writer = w

		c.Next()

		c.Writer = original

		if w.status == http.StatusOK && w.body.Len() > 0 {
			etag := generateETag(w.body.Bytes())
			c.Header("ETag", etag)
			c.Header("Cache-Control", "no-cache")

			if !shouldBypassCache(c.Request) && matchesETag(c.GetHeader("If-None-Match"), etag) {
				original.WriteHeader(http.StatusNotModified)
				original.WriteHeaderNow()
				return
			}
		}

		original.WriteHeader(w.status)
		if w.body.Len() == 0 {
			original.WriteHeaderNow()
			return
		}
		_, _ = original.Write(w.body.Bytes())
	}
}

// shouldBypassCache checks if cache should be bypassed based on request headers
func shouldBypassCache(req *http.Request) bool {
	for _, directive := range strings.Split(strings.ToLower(req.Header.Get("Cache-Control")), ",") {
		directive = strings.TrimSpace(directive)
		if directive == "no-cache" || directive == "no-store" || directive == "max-age=0" {
			return true
		}
	}

	// Also check Pragma header for backwards compatibility
	return req.Header.Get("Pragma") == "no-cache"
}

func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// generateETag creates an ETag for the response body
func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(hash[:16]))
}
