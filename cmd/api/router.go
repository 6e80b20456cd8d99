package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsletter-backend/internal/shared/middleware"
	"newsletter-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Server-rendered pages
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")
	setupPageRoutes(router, c)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupNewsletterRoutes(v1, c)
	}

	return router
}

// ========================================
// PAGE ROUTES
// ========================================
func setupPageRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/", c.PageHandler.Home)

	// Authenticated visitors have no business on the auth forms
	router.GET("/login", middleware.RedirectIfAuthenticated(c.JWTManager), c.PageHandler.Login)
	router.GET("/signup", middleware.RedirectIfAuthenticated(c.JWTManager), c.PageHandler.Signup)

	// Protected pages redirect anonymous visitors to /login?redirect=<path>
	router.GET("/dashboard", middleware.RequireSession(c.JWTManager), c.PageHandler.Dashboard)
	router.GET("/history", middleware.RequireSession(c.JWTManager), c.PageHandler.History)
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// NEWSLETTER ROUTES
// ========================================
func setupNewsletterRoutes(v1 *gin.RouterGroup, c *container.Container) {
	newsletters := v1.Group("/newsletters")
	newsletters.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		newsletters.POST("", c.NewsletterHandler.Generate)
		newsletters.GET("", c.NewsletterHandler.List)
		newsletters.GET("/export", c.NewsletterHandler.Export)
		newsletters.GET("/:id", c.NewsletterHandler.Get)
		newsletters.DELETE("/:id", c.NewsletterHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis. The metadata cache is optional, so a broken
		// redis never fails the health check.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
