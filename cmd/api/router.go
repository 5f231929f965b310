package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "discal-backend/internal/auth/delivery"
	authUsecase "discal-backend/internal/auth/usecase"
	searchDelivery "discal-backend/internal/search/delivery"
	searchUsecase "discal-backend/internal/search/usecase"
	userDelivery "discal-backend/internal/user/delivery"
	userUsecase "discal-backend/internal/user/usecase"
	webhookDelivery "discal-backend/internal/webhook/delivery"
	webhookUsecase "discal-backend/internal/webhook/usecase"
	"discal-backend/pkg/config"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	userUc userUsecase.UserUsecase,
	searchUc searchUsecase.SearchUsecase,
	webhookUc webhookUsecase.WebhookUsecase,
	notifier webhookDelivery.Notifier,
	cfg *config.Config,
) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	searchHandler := searchDelivery.NewSearchHandler(searchUc)
	webhookHandler := webhookDelivery.NewWebhookHandler(webhookUc, notifier)

	// Liveness/info endpoints live outside the versioned prefix
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.AppName,
			"status":  "running",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/callback", authHandler.Callback)
			auth.POST("/token/refresh", authHandler.Refresh)
			auth.GET("/token/info", authHandler.TokenInfo)
			auth.POST("/calendar", authHandler.Calendar)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/username/:name", userHandler.GetUserByUsername)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.PATCH("/:id/activate", userHandler.ActivateUser)
			users.PATCH("/:id/deactivate", userHandler.DeactivateUser)
		}

		discord := api.Group("/discord")
		{
			discord.POST("/webhook", webhookHandler.Receive)
			discord.GET("/webhook/health", webhookHandler.Health)
			discord.POST("/notify", webhookHandler.Notify)
		}

		api.POST("/search", searchHandler.Search)
		api.GET("/vector/info", searchHandler.CollectionInfo)
	}
}
