package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-browser/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service health and the state of the podcast list.
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Service is up"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "healthy",
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.Podcasts != nil {
			response.Catalog = getCatalogStatus(deps.Podcasts)
		}

		c.JSON(http.StatusOK, response)
	}
}

// getCatalogStatus summarizes the list state. A failed fetch does not make
// the service unhealthy; the last known list is still served.
func getCatalogStatus(list types.PodcastList) *types.CatalogStatus {
	podcasts := list.Podcasts()
	count := len(podcasts.Get())
	status := &types.CatalogStatus{
		Loaded:   count > 0,
		Loading:  list.Loading(),
		Count:    count,
		Watchers: podcasts.Subscribers(),
	}
	if err := list.LastError(); err != nil {
		status.LastError = err.Message
		status.ErrorCode = string(err.Code)
	}
	return status
}
