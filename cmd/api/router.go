package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wishbox-backend/internal/shared/middleware"
	"wishbox-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.FrontendURL),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupWishlistRoutes(router, c)
	setupScrapeRoutes(router, c)
	setupRealtimeRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.Auth(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// WISHLIST ROUTES
// ========================================
// Owner routes require a token; guest routes run behind OptionalAuth so
// anonymous visitors pass through while a logged-in caller is recognized
// (private-list visibility, own-item blocks).
func setupWishlistRoutes(r *gin.Engine, c *container.Container) {
	wishlists := r.Group("/wishlists")
	{
		wishlists.POST("", middleware.Auth(c.JWTManager), c.WishlistHandler.Create)
		wishlists.GET("", middleware.Auth(c.JWTManager), c.WishlistHandler.List)

		wishlists.GET("/:slug", middleware.OptionalAuth(c.JWTManager), c.WishlistHandler.Get)
		wishlists.PATCH("/:slug", middleware.Auth(c.JWTManager), c.WishlistHandler.Update)
		wishlists.DELETE("/:slug", middleware.Auth(c.JWTManager), c.WishlistHandler.Delete)

		items := wishlists.Group("/:slug/items")
		{
			items.POST("", middleware.Auth(c.JWTManager), c.ItemHandler.Create)
			items.PATCH("/:itemId", middleware.Auth(c.JWTManager), c.ItemHandler.Update)
			items.DELETE("/:itemId", middleware.Auth(c.JWTManager), c.ItemHandler.Delete)

			items.POST("/:itemId/reserve", middleware.OptionalAuth(c.JWTManager), c.ReservationHandler.Reserve)
			items.DELETE("/:itemId/reserve", middleware.OptionalAuth(c.JWTManager), c.ReservationHandler.Cancel)

			items.POST("/:itemId/contribute", middleware.OptionalAuth(c.JWTManager), c.ContributionHandler.Contribute)
		}
	}
}

// ========================================
// SCRAPE ROUTES
// ========================================
func setupScrapeRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/scrape", middleware.OptionalAuth(c.JWTManager), c.ScrapeHandler.Scrape)
}

// ========================================
// REALTIME ROUTES
// ========================================
func setupRealtimeRoutes(r *gin.Engine, c *container.Container) {
	r.GET("/ws/:slug", c.RealtimeHandler.Subscribe)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		health := gin.H{"status": "ok"}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = err.Error()
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			health["redis"] = err.Error()
		}

		ctx.JSON(status, health)
	}
}
