package main

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)
	if c.Limiter != nil {
		router.Use(middleware.RateLimitWrites(c.Limiter))
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Resource not found")
	})

	router.GET("/", indexHandler(router))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupAuthorRoutes(v1, c)
	}

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.PATCH("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.PATCH("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/books", c.BookHandler.ListByAuthor)
	}
}

// indexHandler lists the registered endpoints
func indexHandler(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := router.Routes()
		endpoints := make([]string, 0, len(routes))
		for _, r := range routes {
			endpoints = append(endpoints, r.Method+" "+r.Path)
		}
		sort.Strings(endpoints)

		response.Success(c, http.StatusOK, "Library catalog API", gin.H{
			"version":   "v1",
			"endpoints": endpoints,
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := gin.H{"database": "ok"}
		status := http.StatusOK
		if appCtx.DB == nil {
			services["database"] = "disconnected"
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		} else if err := appCtx.DB.HealthCheck(ctx); err != nil {
			services["database"] = "unavailable"
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}

		if appCtx.Redis != nil {
			services["redis"] = "ok"
			if err := cache.Ping(ctx, appCtx.Redis); err != nil {
				services["redis"] = "unavailable"
				health["status"] = "degraded"
			}
		}
		health["services"] = services

		response.Success(c, status, "Health check", health)
	}
}
