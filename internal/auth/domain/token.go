package domain

// TokenPayload is the provider's token-endpoint response body, returned whole
// so callers can keep refresh tokens and compute expiry themselves.
type TokenPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}

// UserInfo is the provider's userinfo response.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// TokenInfo is the provider's tokeninfo response.
type TokenInfo struct {
	IssuedTo  string `json:"issued_to"`
	Audience  string `json:"audience"`
	UserID    string `json:"user_id"`
	Scope     string `json:"scope"`
	ExpiresIn int    `json:"expires_in"`
	Email     string `json:"email"`
}
