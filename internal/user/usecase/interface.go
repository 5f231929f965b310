package usecase

import (
	"context"

	userdto "discal-backend/internal/user/dto"
)

// UserUsecase is the administrative CRUD surface over user records. All
// failures are taxonomy errors from internal/apperr.
type UserUsecase interface {
	CreateUser(ctx context.Context, req *userdto.CreateUserRequest) (*userdto.UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*userdto.UserResponse, error)
	GetUserByUsername(ctx context.Context, username string) (*userdto.UserResponse, error)
	ListUsers(ctx context.Context, skip, limit int) (*userdto.UserListResponse, error)
	UpdateUser(ctx context.Context, id string, req *userdto.UpdateUserRequest) (*userdto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	ActivateUser(ctx context.Context, id string) (*userdto.UserResponse, error)
	DeactivateUser(ctx context.Context, id string) (*userdto.UserResponse, error)
}
