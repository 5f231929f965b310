package usecase

import (
	"context"

	authdomain "discal-backend/internal/auth/domain"
	"discal-backend/internal/auth/dto"
)

// OAuthProvider is the external identity provider surface the auth flow
// depends on.
type OAuthProvider interface {
	LoginURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*authdomain.TokenPayload, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*authdomain.TokenPayload, error)
	VerifyToken(ctx context.Context, accessToken string) (*authdomain.UserInfo, error)
	GetTokenInfo(ctx context.Context, accessToken string) (*authdomain.TokenInfo, error)
}

// CalendarSyncFunc pulls the user's calendar with a fresh access token and
// returns how many events were inserted or changed.
type CalendarSyncFunc func(ctx context.Context, accessToken, ownerEmail string) (int, error)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Callback(ctx context.Context, code, state, providerErr string) (*dto.CallbackResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Calendar(ctx context.Context, externalID string) (*dto.CalendarSyncResponse, error)
	SetCalendarSyncCallback(fn CalendarSyncFunc)
}
