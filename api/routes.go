package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-browser/api/health"
	"github.com/killallgit/podcast-browser/api/podcasts"
	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/api/version"
	_ "github.com/killallgit/podcast-browser/docs/swagger"
)

// RouteOptions carries per-group middleware
type RouteOptions struct {
	Read    gin.HandlerFunc
	Refresh gin.HandlerFunc
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}
	pass := func(c *gin.Context) { c.Next() }
	if opts.Read == nil {
		opts.Read = pass
	}
	if opts.Refresh == nil {
		opts.Refresh = pass
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	podcastGroup := v1.Group("/podcasts")
	podcasts.RegisterRoutes(podcastGroup, deps, opts.Read, opts.Refresh)

	return nil
}
