package types

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/navigation"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

func TestFromModelPodcast(t *testing.T) {
	p := models.Podcast{ID: "p1", Title: "Show A", Publisher: "Pub A", Image: "http://x/a.png", Description: "<b>hi</b>"}

	dto, err := FromModelPodcast(p)
	require.NoError(t, err)

	assert.Equal(t, "p1", dto.ID)
	assert.Equal(t, "<b>hi</b>", dto.Description)
	assert.Equal(t, "podcasts/details/"+dto.Token, dto.Route)

	decoded, err := navigation.Decode(dto.Token)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestFromModelPodcastList_SkipsUnroutable(t *testing.T) {
	list, skipped := FromModelPodcastList([]models.Podcast{{ID: "a"}, {Title: "no id"}, {ID: "b"}})

	assert.Equal(t, 1, skipped)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestFromModelPodcastList_EmptyIsNotNil(t *testing.T) {
	list, skipped := FromModelPodcastList(nil)
	assert.NotNil(t, list)
	assert.Zero(t, skipped)
}

func TestSendAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendAppError(c, apperrors.DecodeError("bad prefix", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"DECODE"`)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}
