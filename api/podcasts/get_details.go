package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/internal/navigation"
)

// GetDetails decodes a details route token
// @Summary      Get podcast details
// @Description  Decodes the token of a details route back into the podcast it was built from.
// @Description  The token holds every field, so no catalog lookup happens.
// @Tags         podcasts
// @Produce      json
// @Param        token path string true "Route token from a list entry"
// @Success      200 {object} types.SinglePodcastResponse "Decoded podcast"
// @Failure      400 {object} types.ErrorResponse "Token is not a valid route argument"
// @Router       /api/v1/podcasts/details/{token} [get]
func GetDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		podcast, err := navigation.Decode(token)
		if err != nil {
			logrus.WithError(err).WithField("request_id", c.GetString("request_id")).Warn("Rejected details token")
			types.SendAppError(c, err)
			return
		}

		dto, err := types.FromModelPodcast(podcast)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcast decoded successfully",
			},
			Podcast: &dto,
		})
	}
}
