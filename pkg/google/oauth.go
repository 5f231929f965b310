package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	authdomain "discal-backend/internal/auth/domain"
)

const (
	defaultTokenURL     = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	defaultTokenInfoURL = "https://www.googleapis.com/oauth2/v1/tokeninfo"
)

// OAuthService talks to the Google OAuth endpoints directly. It keeps no
// local state: expiry bookkeeping and refresh-token retention are the
// caller's job. Outbound calls use a bounded timeout and never retry.
type OAuthService struct {
	oauthCfg   *oauth2.Config
	httpClient *http.Client

	tokenURL     string
	userInfoURL  string
	tokenInfoURL string
}

func NewOAuthService(clientID, clientSecret, redirectURI string) *OAuthService {
	return &OAuthService{
		oauthCfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		tokenURL:     defaultTokenURL,
		userInfoURL:  defaultUserInfoURL,
		tokenInfoURL: defaultTokenInfoURL,
	}
}

// LoginURL formats the authorization-request URL. The state token is opaque
// to this adapter; callers generate it and validate it on callback.
func (s *OAuthService) LoginURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades an authorization code for the full token payload.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*authdomain.TokenPayload, error) {
	data := url.Values{
		"client_id":     {s.oauthCfg.ClientID},
		"client_secret": {s.oauthCfg.ClientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {s.oauthCfg.RedirectURL},
	}

	payload, err := s.postToken(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	log.Println("[OAuth] successfully exchanged code for tokens")
	return payload, nil
}

// RefreshAccessToken issues a refresh grant. The response may omit a new
// refresh token; callers must keep the previous one in that case.
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*authdomain.TokenPayload, error) {
	data := url.Values{
		"client_id":     {s.oauthCfg.ClientID},
		"client_secret": {s.oauthCfg.ClientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	}

	payload, err := s.postToken(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	log.Println("[OAuth] successfully refreshed access token")
	return payload, nil
}

func (s *OAuthService) postToken(ctx context.Context, data url.Values) (*authdomain.TokenPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var payload authdomain.TokenPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("access token not present in response")
	}
	return &payload, nil
}

// VerifyToken fetches the userinfo document for an access token, failing when
// the provider rejects the token.
func (s *OAuthService) VerifyToken(ctx context.Context, accessToken string) (*authdomain.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify Google token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[OAuth] token verification failed: %d", resp.StatusCode)
		return nil, fmt.Errorf("invalid Google access token: status %d", resp.StatusCode)
	}

	var info authdomain.UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTokenInfo fetches token metadata, including the remaining lifetime.
func (s *OAuthService) GetTokenInfo(ctx context.Context, accessToken string) (*authdomain.TokenInfo, error) {
	u := s.tokenInfoURL + "?access_token=" + url.QueryEscape(accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get token information: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[OAuth] tokeninfo request failed: %d", resp.StatusCode)
		return nil, fmt.Errorf("invalid or expired access token: status %d", resp.StatusCode)
	}

	var info authdomain.TokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
