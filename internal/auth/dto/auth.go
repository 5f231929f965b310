package dto

// LoginRequest starts an OAuth login for an external chat identity.
type LoginRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	UserEmail string `json:"user_email" binding:"required"`
}

// LoginResponse carries the consent URL to visit. LoginURL is empty when the
// stored token is still valid and no re-consent is needed.
type LoginResponse struct {
	LoginURL     string `json:"login_url"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Message      string `json:"message"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    string `json:"expires_at"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

type CallbackResponse struct {
	Message string `json:"message"`
}

// CalendarSyncRequest triggers a calendar pull for a known user by external id.
type CalendarSyncRequest struct {
	ID string `json:"id" binding:"required"`
}

type CalendarSyncResponse struct {
	Message  string `json:"message"`
	LoginURL string `json:"login_url,omitempty"`
}
