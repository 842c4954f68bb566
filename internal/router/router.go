package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/solarsense-dev/solarsense/internal/handlers"
	"github.com/solarsense-dev/solarsense/internal/middleware"
	"github.com/solarsense-dev/solarsense/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:project_id", middleware.AuthMiddleware(), handlers.WebSocket)

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.POST("/login", handlers.LoginUser)
			users.GET("/profile", middleware.AuthMiddleware(), handlers.GetProfile)
			users.POST("/:id", middleware.AuthMiddleware(), handlers.UpdateUser)
			users.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteUser)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)
			projects.GET("/:projectId", handlers.GetProject)
			projects.POST("/:projectId", handlers.UpdateProject)
			projects.DELETE("/:projectId", handlers.DeleteProject)
			projects.GET("/:projectId/generate-report", handlers.GenerateReport)

			products := projects.Group("/:projectId/products")
			{
				products.POST("", handlers.CreateProduct)
				products.GET("/:id", handlers.GetProduct)
				products.POST("/:id", handlers.UpdateProduct)
				products.DELETE("/:id", handlers.DeleteProduct)
			}
		}
	}

	return r
}
