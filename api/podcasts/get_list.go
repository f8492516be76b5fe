package podcasts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/internal/services/podcastlist"
)

// GetList returns the current podcast list
// @Summary      List best podcasts
// @Description  Returns the current snapshot of the best podcasts list, in catalog order.
// @Description  The list is empty until the first fetch succeeds and keeps its last value when a fetch fails.
// @Description  Each entry carries the route that opens it on the details screen.
// @Tags         podcasts
// @Produce      json
// @Param        q query string false "Filter by title or publisher" example(daily)
// @Success      200 {object} types.PodcastsResponse "Podcast list snapshot"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      503 {object} types.ErrorResponse "List state not configured"
// @Router       /api/v1/podcasts [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Podcasts == nil {
			types.SendServiceUnavailable(c)
			return
		}

		snapshot := deps.Podcasts.Podcasts().Get()
		query := strings.TrimSpace(c.Query("q"))

		selected := snapshot
		if query != "" {
			selected = podcastlist.Filter(snapshot, query)
		}

		podcasts, skipped := types.FromModelPodcastList(selected)
		if skipped > 0 {
			logrus.WithField("skipped", skipped).Warn("Podcasts without an id left out of the response")
		}

		status, message := types.StatusOK, "Podcasts retrieved successfully"
		loading := deps.Podcasts.Loading()
		if loading && len(snapshot) == 0 {
			status, message = types.StatusLoading, "Podcasts are being fetched"
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{
				Status:  status,
				Message: message,
			},
			Podcasts: podcasts,
			Count:    len(podcasts),
			Total:    len(snapshot),
			Query:    query,
			Loading:  loading,
		})
	}
}
