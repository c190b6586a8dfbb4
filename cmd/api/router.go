package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/shared/middleware"
	"bookstore-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(c.Log),
		middleware.RequestID(),
		middleware.RequestLogger(c.Log),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(c))

		// Login lives at POST /api/users.
		api.POST("/users", c.UserHandler.Login)

		authed := middleware.Authenticate(c.Tokens)
		admin := middleware.RequireRole(middleware.RoleAdministrator)

		authors := api.Group("/authors", authed)
		{
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.Get)

			// Writes on authors require the Administrator role.
			authors.POST("", admin, c.AuthorHandler.Create)
			authors.PUT("/:id", admin, c.AuthorHandler.Update)
			authors.DELETE("/:id", admin, c.AuthorHandler.Delete)
		}

		books := api.Group("/books", authed)
		{
			books.GET("", c.BookHandler.List)
			books.GET("/:id", c.BookHandler.Get)
			books.POST("", c.BookHandler.Create)
			books.PUT("/:id", c.BookHandler.Update)
			books.DELETE("/:id", c.BookHandler.Delete)
		}
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "up"})
	}
}
