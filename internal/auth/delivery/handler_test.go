package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"discal-backend/internal/apperr"
	"discal-backend/internal/auth/dto"
	"discal-backend/internal/auth/usecase"
)

type stubAuthUsecase struct {
	loginResp    *dto.LoginResponse
	loginErr     error
	callbackResp *dto.CallbackResponse
	callbackErr  error
	refreshResp  *dto.TokenResponse
	refreshErr   error
	calendarResp *dto.CalendarSyncResponse
	calendarErr  error

	gotCode        string
	gotProviderErr string
}

func (s *stubAuthUsecase) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthUsecase) Callback(_ context.Context, code, _, providerErr string) (*dto.CallbackResponse, error) {
	s.gotCode = code
	s.gotProviderErr = providerErr
	return s.callbackResp, s.callbackErr
}

func (s *stubAuthUsecase) RefreshToken(context.Context, string) (*dto.TokenResponse, error) {
	return s.refreshResp, s.refreshErr
}

func (s *stubAuthUsecase) Calendar(context.Context, string) (*dto.CalendarSyncResponse, error) {
	return s.calendarResp, s.calendarErr
}

func (s *stubAuthUsecase) SetCalendarSyncCallback(usecase.CalendarSyncFunc) {}

func newTestRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(uc)
	r := gin.New()
	auth := r.Group("/api/v1/auth")
	auth.POST("/login", h.Login)
	auth.GET("/callback", h.Callback)
	auth.POST("/token/refresh", h.Refresh)
	auth.GET("/token/info", h.TokenInfo)
	auth.POST("/calendar", h.Calendar)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsURL(t *testing.T) {
	uc := &stubAuthUsecase{loginResp: &dto.LoginResponse{LoginURL: "https://accounts.example.com/auth", Message: "visit"}}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"user_id":"discord-1","user_email":"a@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accounts.example.com")
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter(&stubAuthUsecase{})

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"user_id":"discord-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackPassesQueryParams(t *testing.T) {
	uc := &stubAuthUsecase{callbackResp: &dto.CallbackResponse{Message: "Login successful, 2 events updated"}}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/callback?code=abc&state=xyz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", uc.gotCode)
	assert.Contains(t, w.Body.String(), "2 events updated")
}

func TestCallbackProviderErrorIs400(t *testing.T) {
	uc := &stubAuthUsecase{callbackErr: apperr.Validation("authorization failed: access_denied")}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/callback?error=access_denied", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "access_denied", uc.gotProviderErr)
}

func TestRefreshFailureIs401(t *testing.T) {
	uc := &stubAuthUsecase{refreshErr: apperr.Authentication("token refresh failed")}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/token/refresh", `{"refresh_token":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenInfoDoc(t *testing.T) {
	r := newTestRouter(&stubAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/token/info", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tokeninfo")
}

func TestCalendarSync(t *testing.T) {
	uc := &stubAuthUsecase{calendarResp: &dto.CalendarSyncResponse{Message: "Calendar synced, 4 events updated"}}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/calendar", `{"id":"discord-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "4 events updated")
}

func TestCalendarUnknownUserIs404(t *testing.T) {
	uc := &stubAuthUsecase{calendarErr: apperr.NotFound("user", "ghost")}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/calendar", `{"id":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
