package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"discal-backend/internal/apperr"
	"discal-backend/internal/auth/dto"
	userdomain "discal-backend/internal/user/domain"
	userrepo "discal-backend/internal/user/repository"
)

type authUsecase struct {
	provider OAuthProvider
	userRepo userrepo.UserRepository
	syncFn   CalendarSyncFunc
}

func NewAuthUsecase(provider OAuthProvider, userRepo userrepo.UserRepository) AuthUsecase {
	return &authUsecase{
		provider: provider,
		userRepo: userRepo,
	}
}

// SetCalendarSyncCallback wires the post-callback calendar pull. Set after
// construction to avoid a dependency cycle between the auth and calendar
// use-cases.
func (u *authUsecase) SetCalendarSyncCallback(fn CalendarSyncFunc) {
	u.syncFn = fn
}

// Login returns a consent URL for the external identity, creating the user
// record on first contact. When the stored access token still verifies, no
// URL is issued.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByExternalID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.Database(err)
	}

	if user != nil && user.AccessToken != "" {
		if _, err := u.provider.VerifyToken(ctx, user.AccessToken); err == nil {
			return &dto.LoginResponse{
				Message:      "User already has a valid token",
				RefreshToken: user.RefreshToken,
			}, nil
		}
	}

	if user == nil {
		// The email may already be registered through the admin surface;
		// attach the external id instead of creating a duplicate.
		existing, err := u.userRepo.FindByEmail(ctx, req.UserEmail)
		if err != nil {
			return nil, apperr.Database(err)
		}
		if existing != nil {
			existing.ExternalID = req.UserID
			if _, err := u.userRepo.Update(ctx, existing); err != nil {
				return nil, apperr.Database(err)
			}
		} else {
			_, err = u.userRepo.Create(ctx, &userdomain.User{
				ExternalID: req.UserID,
				Email:      req.UserEmail,
				Username:   req.UserID,
				IsActive:   true,
			})
			if err != nil && !apperr.IsKind(err, apperr.KindAlreadyExists) {
				return nil, apperr.Database(err)
			}
		}
	}

	state := uuid.NewString()
	return &dto.LoginResponse{
		LoginURL: u.provider.LoginURL(state),
		Message:  "Visit the login URL to authorize calendar access",
	}, nil
}

// Callback completes the OAuth code exchange, stores the tokens on the user
// record and kicks off a best-effort calendar sync.
func (u *authUsecase) Callback(ctx context.Context, code, state, providerErr string) (*dto.CallbackResponse, error) {
	if providerErr != "" {
		return nil, apperr.Validation("authorization failed: %s", providerErr)
	}
	if code == "" {
		return nil, apperr.Validation("missing authorization code")
	}

	payload, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperr.Validation("code exchange failed: %v", err)
	}
	if payload.AccessToken == "" {
		return nil, apperr.Validation("provider returned no access token")
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	expiresAt := time.Now().UTC().Add(time.Duration(expiresIn) * time.Second)

	info, err := u.provider.VerifyToken(ctx, payload.AccessToken)
	if err != nil || info.Email == "" {
		return &dto.CallbackResponse{Message: "Login successful, but no email returned"}, nil
	}

	user, err := u.userRepo.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return &dto.CallbackResponse{Message: "User not found"}, nil
	}

	user.AccessToken = payload.AccessToken
	if payload.RefreshToken != "" {
		user.RefreshToken = payload.RefreshToken
	}
	user.ExpiresAt = &expiresAt
	if info.Name != "" {
		user.FullName = info.Name
	}
	user.IsActive = true

	if user.ExternalID != "" {
		_, err = u.userRepo.UpdateByExternalID(ctx, user)
	} else {
		_, err = u.userRepo.Update(ctx, user)
	}
	if err != nil {
		return nil, apperr.Database(err)
	}

	changed := u.syncCalendar(ctx, payload.AccessToken, user.Email)
	return &dto.CallbackResponse{
		Message: fmt.Sprintf("Login successful, %d events updated", changed),
	}, nil
}

// RefreshToken trades a refresh token for a new access token. The old refresh
// token is carried forward when the provider omits a new one.
func (u *authUsecase) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperr.Validation("missing refresh token")
	}

	payload, err := u.provider.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return nil, apperr.Authentication("token refresh failed: "+err.Error())
	}
	if payload.AccessToken == "" {
		return nil, apperr.Authentication("provider returned no access token")
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	expiresAt := time.Now().UTC().Add(time.Duration(expiresIn) * time.Second)

	newRefresh := payload.RefreshToken
	if newRefresh == "" {
		newRefresh = refreshToken
	}

	tokenType := payload.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &dto.TokenResponse{
		AccessToken:  payload.AccessToken,
		TokenType:    tokenType,
		ExpiresIn:    expiresIn,
		ExpiresAt:    expiresAt.Format(time.RFC3339),
		RefreshToken: newRefresh,
		Scope:        payload.Scope,
	}, nil
}

// Calendar pulls the calendar for a known external identity, falling back to
// a fresh login URL when no usable token is stored.
func (u *authUsecase) Calendar(ctx context.Context, externalID string) (*dto.CalendarSyncResponse, error) {
	user, err := u.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", externalID)
	}

	if user.AccessToken == "" {
		return u.calendarLoginFallback(user), nil
	}
	if _, err := u.provider.VerifyToken(ctx, user.AccessToken); err != nil {
		return u.calendarLoginFallback(user), nil
	}

	changed := u.syncCalendar(ctx, user.AccessToken, user.Email)
	return &dto.CalendarSyncResponse{
		Message: fmt.Sprintf("Calendar synced, %d events updated", changed),
	}, nil
}

func (u *authUsecase) calendarLoginFallback(user *userdomain.User) *dto.CalendarSyncResponse {
	state := uuid.NewString()
	return &dto.CalendarSyncResponse{
		Message:  "Token missing or expired, re-authorization required",
		LoginURL: u.provider.LoginURL(state),
	}
}

func (u *authUsecase) syncCalendar(ctx context.Context, accessToken, ownerEmail string) int {
	if u.syncFn == nil {
		return 0
	}
	changed, err := u.syncFn(ctx, accessToken, ownerEmail)
	if err != nil {
		log.Printf("[Auth] calendar sync failed for %s: %v", ownerEmail, err)
		return 0
	}
	return changed
}
