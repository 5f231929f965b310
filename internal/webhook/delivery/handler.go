package delivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"discal-backend/internal/webhook/usecase"
)

// Notifier sends outbound messages to the chat platform.
type Notifier interface {
	Send(ctx context.Context, content string) error
}

type WebhookHandler struct {
	webhookUsecase usecase.WebhookUsecase
	notifier       Notifier
}

func NewWebhookHandler(webhookUsecase usecase.WebhookUsecase, notifier Notifier) *WebhookHandler {
	return &WebhookHandler{
		webhookUsecase: webhookUsecase,
		notifier:       notifier,
	}
}

// Receive accepts an inbound event payload. Malformed JSON is the only client
// error; recognized and unrecognized kinds alike answer 200.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	status, err := h.webhookUsecase.Process(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "discord_webhook_receiver",
	})
}

type notifyRequest struct {
	Content string `json:"content" binding:"required"`
}

// Notify pushes a message out through the configured webhook.
func (h *WebhookHandler) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notifier.Send(c.Request.Context(), req.Content); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
