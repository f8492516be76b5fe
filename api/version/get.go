package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-browser/api/types"
)

// Get handles version requests
// @Summary      Service information
// @Tags         health
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        "Podcast Browser API",
			Version:     version,
			Description: "Best podcasts list with route tokens for the details screen",
			Status:      "running",
		})
	}
}
