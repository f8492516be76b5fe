package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-browser/api/types"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// PostRefresh schedules another catalog fetch
// @Summary      Refresh the podcast list
// @Description  Schedules one more fetch of the best podcasts. At most one fetch runs at a time.
// @Description  The list is replaced only if the fetch succeeds.
// @Tags         podcasts
// @Produce      json
// @Success      202 {object} types.RefreshResponse "Fetch scheduled"
// @Failure      409 {object} types.ErrorResponse "A fetch is already in flight"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/podcasts/refresh [post]
func PostRefresh(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Podcasts == nil {
			types.SendServiceUnavailable(c)
			return
		}

		if !deps.Podcasts.Refresh() {
			types.SendAppError(c, apperrors.New(apperrors.ErrCodeConflict, "A fetch is already in flight"))
			return
		}

		c.JSON(http.StatusAccepted, types.RefreshResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusQueued,
				Message: "Refresh scheduled",
			},
			Scheduled: true,
		})
	}
}
