package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discal-backend/internal/apperr"
	userdomain "discal-backend/internal/user/domain"
	userdto "discal-backend/internal/user/dto"
)

// stubUsecase implements usecase.UserUsecase over a map, enough to exercise
// the handler's status-code mapping.
type stubUsecase struct {
	byID map[string]*userdto.UserResponse
}

func newStubUsecase() *stubUsecase {
	return &stubUsecase{byID: make(map[string]*userdto.UserResponse)}
}

func (s *stubUsecase) CreateUser(_ context.Context, req *userdto.CreateUserRequest) (*userdto.UserResponse, error) {
	if err := userdomain.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := userdomain.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	for _, u := range s.byID {
		if u.Username == req.Username || u.Email == req.Email {
			return nil, apperr.AlreadyExists("user", req.Email)
		}
	}
	now := time.Now()
	resp := &userdto.UserResponse{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[resp.ID] = resp
	return resp, nil
}

func (s *stubUsecase) GetUserByID(_ context.Context, id string) (*userdto.UserResponse, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user", id)
}

func (s *stubUsecase) GetUserByUsername(_ context.Context, username string) (*userdto.UserResponse, error) {
	for _, u := range s.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user", username)
}

func (s *stubUsecase) ListUsers(_ context.Context, skip, limit int) (*userdto.UserListResponse, error) {
	users := make([]*userdto.UserResponse, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, u)
	}
	return &userdto.UserListResponse{Users: users, Total: len(users), Skip: skip, Limit: limit}, nil
}

func (s *stubUsecase) UpdateUser(ctx context.Context, id string, req *userdto.UpdateUserRequest) (*userdto.UserResponse, error) {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		if err := userdomain.ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	return u, nil
}

func (s *stubUsecase) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}
	delete(s.byID, id)
	return nil
}

func (s *stubUsecase) ActivateUser(ctx context.Context, id string) (*userdto.UserResponse, error) {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = true
	return u, nil
}

func (s *stubUsecase) DeactivateUser(ctx context.Context, id string) (*userdto.UserResponse, error) {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = false
	return u, nil
}

func newTestRouter() (*gin.Engine, *stubUsecase) {
	gin.SetMode(gin.TestMode)
	uc := newStubUsecase()
	h := NewUserHandler(uc)

	r := gin.New()
	users := r.Group("/api/v1/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/username/:name", h.GetUserByUsername)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.PATCH("/:id/activate", h.ActivateUser)
		users.PATCH("/:id/deactivate", h.DeactivateUser)
	}
	return r, uc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUserStatusCodes(t *testing.T) {
	r, _ := newTestRouter()

	body := map[string]string{"username": "johndoe", "email": "john@example.com"}

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created userdto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	// Repeating the call conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Validation failure is a 400.
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", map[string]string{"username": "ab", "email": "john2@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required field is a 400 from binding.
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", map[string]string{"username": "janedoe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/username/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAndPatchFlow(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", map[string]string{"username": "johndoe", "email": "john@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created userdto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/v1/users/"+created.ID+"/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled userdto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.False(t, toggled.IsActive)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/users/"+created.ID+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
