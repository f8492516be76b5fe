package navigation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/killallgit/podcast-browser/internal/models"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// schemaVersion is bumped only for incompatible payload changes. Adding an
// optional member keeps the version: older tokens simply lack it.
const schemaVersion = 1

var tokenPrefix = fmt.Sprintf("v%d.", schemaVersion)

var encoding = base64.RawURLEncoding

// payloadMembers are the member names Encode writes.
var payloadMembers = []string{"v", "id", "title", "publisher", "image", "description"}

// podcastPayload is the serialized form of a podcast inside a route token.
// Required members are pointers so a missing member can be told apart from
// an empty string.
type podcastPayload struct {
	Version     int     `json:"v"`
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Publisher   *string `json:"publisher"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

// Encode flattens a podcast into a token that is safe to use as a single
// URL path segment. The token holds every field, so the receiving screen
// needs nothing but the token to rebuild the podcast.
func Encode(p models.Podcast) (string, error) {
	if !p.Valid() {
		return "", apperrors.ValidationError("id", "podcast without id cannot be routed")
	}
	for name, value := range map[string]string{
		"id":          p.ID,
		"title":       p.Title,
		"publisher":   p.Publisher,
		"image":       p.Image,
		"description": p.Description,
	} {
		// JSON would replace invalid bytes with U+FFFD and break the round trip
		if !utf8.ValidString(value) {
			return "", apperrors.ValidationError(name, "not valid UTF-8")
		}
	}

	payload := podcastPayload{
		Version:     schemaVersion,
		ID:          &p.ID,
		Title:       &p.Title,
		Publisher:   &p.Publisher,
		Image:       &p.Image,
		Description: &p.Description,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Markup in descriptions must survive byte for byte
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "encoding route token")
	}

	return tokenPrefix + encoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Decode rebuilds a podcast from a token made by Encode. Anything else,
// including truncated tokens and tokens from an incompatible schema,
// fails with a DECODE error.
func Decode(token string) (models.Podcast, error) {
	version, body, ok := strings.Cut(token, ".")
	if !ok {
		return models.Podcast{}, apperrors.DecodeError("missing version prefix", nil)
	}
	if version+"." != tokenPrefix {
		return models.Podcast{}, apperrors.DecodeError(fmt.Sprintf("unsupported schema version %q", version), nil).
			WithDetail("version", version)
	}

	raw, err := encoding.DecodeString(body)
	if err != nil {
		return models.Podcast{}, apperrors.DecodeError("payload is not base64url", err)
	}
	if !utf8.Valid(raw) {
		return models.Podcast{}, apperrors.DecodeError("payload is not valid UTF-8", nil)
	}

	var payload podcastPayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&payload); err != nil {
		return models.Podcast{}, apperrors.DecodeError("payload is not a podcast object", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return models.Podcast{}, apperrors.DecodeError("trailing data after payload", nil)
	}
	if err := checkMembers(raw); err != nil {
		return models.Podcast{}, apperrors.DecodeError(err.Error(), nil)
	}

	if payload.Version != schemaVersion {
		return models.Podcast{}, apperrors.DecodeError(
			fmt.Sprintf("payload version %d does not match prefix", payload.Version), nil)
	}

	for name, value := range map[string]*string{
		"id":          payload.ID,
		"title":       payload.Title,
		"publisher":   payload.Publisher,
		"image":       payload.Image,
		"description": payload.Description,
	} {
		if value == nil {
			return models.Podcast{}, apperrors.DecodeError(fmt.Sprintf("missing field %q", name), nil)
		}
	}

	p := models.Podcast{
		ID:          *payload.ID,
		Title:       *payload.Title,
		Publisher:   *payload.Publisher,
		Image:       *payload.Image,
		Description: *payload.Description,
	}
	if !p.Valid() {
		return models.Podcast{}, apperrors.DecodeError("empty id", nil)
	}

	return p, nil
}

// checkMembers rejects duplicate members and members whose name matches a
// payload member only when case is ignored. encoding/json would accept both,
// so a token Encode never produced could still decode. raw is known to hold
// a single valid JSON object.
func checkMembers(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(payloadMembers))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		if seen[name] {
			return fmt.Errorf("duplicate member %q", name)
		}
		seen[name] = true

		for _, member := range payloadMembers {
			if name != member && strings.EqualFold(name, member) {
				return fmt.Errorf("member %q differs in case from %q", name, member)
			}
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return nil
}
