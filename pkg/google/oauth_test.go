package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(tokenURL, userInfoURL, tokenInfoURL string) *OAuthService {
	s := NewOAuthService("client-id", "client-secret", "http://localhost/callback")
	if tokenURL != "" {
		s.tokenURL = tokenURL
	}
	if userInfoURL != "" {
		s.userInfoURL = userInfoURL
	}
	if tokenInfoURL != "" {
		s.tokenInfoURL = tokenInfoURL
	}
	return s
}

func TestLoginURL(t *testing.T) {
	s := testService("", "", "")

	raw := s.LoginURL("opaque-state")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost/callback", q.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "opaque-state", q.Get("state"))
}

func TestExchangeCode(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","expires_in":3600,"scope":"openid email"}`))
	}))
	defer srv.Close()

	s := testService(srv.URL, "", "")
	payload, err := s.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "auth-code", gotForm.Get("code"))
	assert.Equal(t, "at-1", payload.AccessToken)
	assert.Equal(t, "rt-1", payload.RefreshToken)
	assert.Equal(t, 3600, payload.ExpiresIn)
}

func TestExchangeCodeMissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"expires_in":3600}`))
	}))
	defer srv.Close()

	s := testService(srv.URL, "", "")
	_, err := s.ExchangeCode(context.Background(), "auth-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token not present")
}

func TestExchangeCodeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	s := testService(srv.URL, "", "")
	_, err := s.ExchangeCode(context.Background(), "bad-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestRefreshAccessTokenMayOmitRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt-old", r.PostForm.Get("refresh_token"))
		w.Write([]byte(`{"access_token":"at-2","expires_in":3600}`))
	}))
	defer srv.Close()

	s := testService(srv.URL, "", "")
	payload, err := s.RefreshAccessToken(context.Background(), "rt-old")
	require.NoError(t, err)
	assert.Equal(t, "at-2", payload.AccessToken)
	assert.Empty(t, payload.RefreshToken)
}

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"email":"john@example.com","name":"John Doe"}`))
	}))
	defer srv.Close()

	s := testService("", srv.URL, "")

	info, err := s.VerifyToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", info.Email)
	assert.Equal(t, "John Doe", info.Name)

	_, err = s.VerifyToken(context.Background(), "bad-token")
	assert.Error(t, err)
}

func TestGetTokenInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "some-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"expires_in":1200,"email":"john@example.com","scope":"openid"}`))
	}))
	defer srv.Close()

	s := testService("", "", srv.URL)
	info, err := s.GetTokenInfo(context.Background(), "some-token")
	require.NoError(t, err)
	assert.Equal(t, 1200, info.ExpiresIn)
	assert.Equal(t, "john@example.com", info.Email)
}
