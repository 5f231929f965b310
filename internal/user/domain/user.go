package domain

import (
	"regexp"
	"strings"
	"time"

	"discal-backend/internal/apperr"
)

// User carries both identity schemes: ID is the generated document id used by
// the administrative CRUD surface, ExternalID is the chat-platform subject the
// OAuth flow is keyed by. The two operation sets never cross.
type User struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	ExternalID string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Username   string `bson:"username,omitempty" json:"username"`
	Email      string `bson:"email" json:"email"`
	FullName   string `bson:"full_name,omitempty" json:"full_name,omitempty"`
	IsActive   bool   `bson:"is_active" json:"is_active"`

	// OAuth token state, populated by the callback flow. Never in JSON.
	AccessToken  string     `bson:"access_token,omitempty" json:"-"`
	RefreshToken string     `bson:"refresh_token,omitempty" json:"-"`
	ExpiresAt    *time.Time `bson:"expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	FullNameMaxLength = 100
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func ValidateUsername(username string) error {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return apperr.Validation("username must be %d-%d characters: %s", UsernameMinLength, UsernameMaxLength, username)
	}
	if !usernamePattern.MatchString(username) {
		return apperr.Validation("username may only contain letters, digits and underscore: %s", username)
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.Validation("invalid email format: %s", email)
	}
	return nil
}

func ValidateFullName(fullName string) error {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" || len(fullName) > FullNameMaxLength {
		return apperr.Validation("full name must be 1-%d characters", FullNameMaxLength)
	}
	return nil
}
