// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/spot-rental/internal/config"
	"github.com/iliyamo/spot-rental/internal/handler"
	"github.com/iliyamo/spot-rental/internal/middleware"
	"github.com/iliyamo/spot-rental/internal/repository"
)

// Handlers bundles every resource handler the API group mounts.
type Handlers struct {
	Users    *handler.UserHandler
	Session  *handler.SessionHandler
	Spots    *handler.SpotHandler
	Reviews  *handler.ReviewHandler
	Bookings *handler.BookingHandler
	Images   *handler.ImageHandler
	Refs     *handler.ReferenceHandler
	Storage  *handler.StorageHandler
}

// RegisterRoutes registers routes that live outside the /api group.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts every /api route. The whole group runs behind session
// restore (which never rejects) and the Redis token bucket; individual
// mutation routes add the RequireAuth gate. Ownership checks happen inside
// the handlers because they need the resource row anyway.
func RegisterAPI(e *echo.Echo, cfg config.Config, rdb *redis.Client, users *repository.UserRepo, h Handlers) {
	api := e.Group("/api")
	api.Use(middleware.RestoreUser(cfg.SessionSecret, users))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Signup and session lifecycle.
	api.POST("/users", h.Users.Signup)
	api.POST("/session", h.Session.Login)
	api.GET("/session", h.Session.Show)
	api.DELETE("/session", h.Session.Logout)

	// Spots. Reads are public; the scoped selections check the session
	// themselves so the list route stays open to anonymous browsing.
	api.GET("/spots", h.Spots.List)
	api.GET("/spots/:id", h.Spots.Get)
	api.POST("/spots", h.Spots.Create, middleware.RequireAuth)
	api.PUT("/spots/:id", h.Spots.Update, middleware.RequireAuth)
	api.DELETE("/spots/:id", h.Spots.Delete, middleware.RequireAuth)
	api.PUT("/spots/:id/favorite", h.Spots.Favorite, middleware.RequireAuth)
	api.DELETE("/spots/:id/favorite", h.Spots.Unfavorite, middleware.RequireAuth)

	// Reviews and bookings.
	api.POST("/spots/:id/reviews", h.Reviews.CreateForSpot, middleware.RequireAuth)
	api.GET("/bookings", h.Bookings.ListMine, middleware.RequireAuth)
	api.POST("/spots/:id/bookings", h.Bookings.CreateForSpot, middleware.RequireAuth)
	api.DELETE("/bookings/:id", h.Bookings.Delete, middleware.RequireAuth)

	// Images: list is public, registration and deletion are owner-gated.
	api.GET("/spots/:id/images", h.Images.ListForSpot)
	api.POST("/images", h.Images.Register, middleware.RequireAuth)
	api.DELETE("/images/:id", h.Images.Delete, middleware.RequireAuth)

	// Reference lists behind the response cache.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	api.GET("/amenities", h.Refs.ListAmenities, cache)
	api.GET("/districts", h.Refs.ListDistricts, cache)

	// Upload signing for the two-phase image flow.
	api.GET("/aws/sign-s3", h.Storage.SignUpload, middleware.RequireAuth)
}
