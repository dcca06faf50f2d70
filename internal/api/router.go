package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/auth"
	"github.com/microblogd/microblog/internal/service"
	"github.com/microblogd/microblog/pkg/logging"
)

// Router sets up API routes
type Router struct {
	services *service.Services
	resolver *auth.Resolver
	logger   *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(services *service.Services, resolver *auth.Resolver) *Router {
	return &Router{
		services: services,
		resolver: resolver,
		logger:   logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/health", r.healthHandler)

	api := engine.Group("/api")

	// Registration is the only unauthenticated call
	api.POST("/user", r.registerUser)

	authed := api.Group("", RequireAuth(r.resolver))
	authed.POST("/tweets", r.createTweet)
	authed.GET("/tweets", r.getFeed)
	authed.DELETE("/tweets/:id", r.deleteTweet)
	authed.POST("/tweets/:id/likes", r.addLike)
	authed.DELETE("/tweets/:id/likes", r.removeLike)
	authed.POST("/users/:id/follow", r.follow)
	authed.DELETE("/users/:id/follow", r.unfollow)
	authed.GET("/users/:id", r.getProfile)
	authed.POST("/medias", r.uploadMedia)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "microblog-api",
	})
}
