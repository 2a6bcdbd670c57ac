// Package router registers the HTTP routes of the API.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/handler"
	"github.com/ibuttimer/fyyur/internal/middleware"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/service"
	"github.com/ibuttimer/fyyur/pkg/logger"
	corsmiddleware "github.com/ibuttimer/fyyur/pkg/middleware/cors"
	reqidmiddleware "github.com/ibuttimer/fyyur/pkg/middleware/requestid"
)

// Options carries everything New needs to assemble the engine.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Tokens         middleware.TokenValidator

	Shows   *handler.ShowHandler
	Artists *handler.ArtistHandler
	Venues  *handler.VenueHandler
	System  *handler.MetricsHandler
}

// New builds the gin engine with global middleware and every route group.
func New(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api/v1"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics, middleware.SkipRoutes("/health", "/ready", "/metrics")))

	if opts.System != nil {
		r.GET("/health", opts.System.Health)
		r.GET("/ready", opts.System.Ready)
		r.GET("/metrics", opts.System.Prometheus)
		r.GET("/system/metrics", opts.System.Status)
	}
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)
	auth := middleware.JWT(opts.Tokens)

	if opts.Shows != nil {
		registerShows(api, opts.Shows, auth)
	}
	if opts.Artists != nil {
		registerArtists(api, opts.Artists, auth)
	}
	if opts.Venues != nil {
		registerVenues(api, opts.Venues, auth)
	}

	return r
}

func registerShows(api *gin.RouterGroup, h *handler.ShowHandler, auth gin.HandlerFunc) {
	shows := api.Group("/shows")
	shows.GET("", h.List)
	shows.GET("/:id", h.Get)
	shows.POST("/verify", h.Verify)
	shows.POST("", auth, middleware.RequireRoles(models.RoleAdmin, models.RoleBooker), h.Create)
}

func registerArtists(api *gin.RouterGroup, h *handler.ArtistHandler, auth gin.HandlerFunc) {
	artists := api.Group("/artists")
	artists.GET("/:id", h.Get)
	artists.GET("/:id/availability", h.Availability)
	artists.GET("/:id/availability/history", h.AvailabilityHistory)

	owner := artists.Group("", auth)
	owner.PUT("/:id/genres", middleware.RBAC(string(models.RoleAdmin), middleware.Self), h.UpdateGenres)
	owner.POST("/:id/availability", middleware.RBAC(string(models.RoleAdmin), string(models.RoleBooker), middleware.Self), h.RecordAvailability)
}

func registerVenues(api *gin.RouterGroup, h *handler.VenueHandler, auth gin.HandlerFunc) {
	venues := api.Group("/venues")
	venues.GET("/:id", h.Get)
	venues.GET("/:id/bookings", h.Bookings)
	venues.PUT("/:id/genres", auth, middleware.RequireRoles(models.RoleAdmin, models.RoleBooker), h.UpdateGenres)
}
