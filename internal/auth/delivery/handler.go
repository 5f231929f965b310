package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"discal-backend/internal/apperr"
	"discal-backend/internal/auth/dto"
	"discal-backend/internal/auth/usecase"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login starts the OAuth flow for an external chat identity.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Callback is the provider redirect target. Parameters arrive as query
// strings, including the provider's own error parameter.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	providerErr := c.Query("error")

	resp, err := h.authUsecase.Callback(c.Request.Context(), code, state, providerErr)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh trades a refresh token for a fresh access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TokenInfo documents how to inspect a token against the provider.
func (h *AuthHandler) TokenInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Inspect an access token against the provider's tokeninfo endpoint",
		"endpoint": "https://www.googleapis.com/oauth2/v1/tokeninfo",
		"usage":    "GET ?access_token=<token>",
	})
}

// Calendar triggers a calendar pull for a known external identity.
func (h *AuthHandler) Calendar(c *gin.Context) {
	var req dto.CalendarSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Calendar(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
