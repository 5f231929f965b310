package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	authUsecase "discal-backend/internal/auth/usecase"
	searchUsecase "discal-backend/internal/search/usecase"
	userUsecase "discal-backend/internal/user/usecase"
	webhookDelivery "discal-backend/internal/webhook/delivery"
	webhookUsecase "discal-backend/internal/webhook/usecase"
	"discal-backend/pkg/config"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	userUsecase    userUsecase.UserUsecase
	searchUsecase  searchUsecase.SearchUsecase
	webhookUsecase webhookUsecase.WebhookUsecase
	notifier       webhookDelivery.Notifier
	config         *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	userUc userUsecase.UserUsecase,
	searchUc searchUsecase.SearchUsecase,
	webhookUc webhookUsecase.WebhookUsecase,
	notifier webhookDelivery.Notifier,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		userUsecase:    userUc,
		searchUsecase:  searchUc,
		webhookUsecase: webhookUc,
		notifier:       notifier,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if !h.config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	allowed := h.config.AllowedOrigins
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && originAllowed(origin, allowed) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.searchUsecase, h.webhookUsecase, h.notifier, h.config)

	return r.Run(addr)
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
