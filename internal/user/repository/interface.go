package repository

import (
	"context"

	userdomain "discal-backend/internal/user/domain"
)

// UserRepository is the persistence contract for user records. Lookups return
// (nil, nil) when no record matches; uniqueness violations surface as
// already-exists taxonomy errors.
type UserRepository interface {
	Create(ctx context.Context, user *userdomain.User) (*userdomain.User, error)
	FindByID(ctx context.Context, id string) (*userdomain.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*userdomain.User, error)
	FindByUsername(ctx context.Context, username string) (*userdomain.User, error)
	FindByEmail(ctx context.Context, email string) (*userdomain.User, error)
	List(ctx context.Context, skip, limit int) ([]*userdomain.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *userdomain.User) (*userdomain.User, error)
	UpdateByExternalID(ctx context.Context, user *userdomain.User) (*userdomain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
