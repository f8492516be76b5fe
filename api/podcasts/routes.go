package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-browser/api/middleware"
	"github.com/killallgit/podcast-browser/api/types"
)

// RegisterRoutes registers podcast routes
// Rate limiting is applied at the route registration level
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, readMiddleware, refreshMiddleware gin.HandlerFunc) {
	// GET /api/v1/podcasts - Current list snapshot
	router.GET("", readMiddleware, middleware.ConditionalGet(), GetList(deps))

	// GET /api/v1/podcasts/details/:token - Decode a details route token
	router.GET("/details/:token", readMiddleware, middleware.ConditionalGet(), GetDetails())

	// POST /api/v1/podcasts/refresh - Schedule another catalog fetch
	router.POST("/refresh", refreshMiddleware, PostRefresh(deps))

	// GET /api/v1/podcasts/stream - Websocket feed of list snapshots
	router.GET("/stream", readMiddleware, Stream(deps))
}
