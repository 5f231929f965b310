package usecase

import (
	"context"
	"errors"

	"discal-backend/internal/apperr"
	userdomain "discal-backend/internal/user/domain"
	userdto "discal-backend/internal/user/dto"
	"discal-backend/internal/user/repository"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *userdto.CreateUserRequest) (*userdto.UserResponse, error) {
	// Value rules are checked before any repository call.
	if err := userdomain.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := userdomain.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.FullName != "" {
		if err := userdomain.ValidateFullName(req.FullName); err != nil {
			return nil, err
		}
	}

	taken, err := u.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, wrapDB(err)
	}
	if taken {
		return nil, apperr.AlreadyExists("user", req.Username)
	}

	taken, err = u.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, wrapDB(err)
	}
	if taken {
		return nil, apperr.AlreadyExists("user", req.Email)
	}

	user := &userdomain.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: true,
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return nil, wrapDB(err)
	}
	return userdto.FromEntity(created), nil
}

func (u *userUsecase) GetUserByID(ctx context.Context, id string) (*userdto.UserResponse, error) {
	user, err := u.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return userdto.FromEntity(user), nil
}

func (u *userUsecase) GetUserByUsername(ctx context.Context, username string) (*userdto.UserResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, wrapDB(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", username)
	}
	return userdto.FromEntity(user), nil
}

func (u *userUsecase) ListUsers(ctx context.Context, skip, limit int) (*userdto.UserListResponse, error) {
	users, err := u.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, wrapDB(err)
	}
	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, wrapDB(err)
	}

	responses := make([]*userdto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userdto.FromEntity(user))
	}
	return &userdto.UserListResponse{
		Users: responses,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id string, req *userdto.UpdateUserRequest) (*userdto.UserResponse, error) {
	user, err := u.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := userdomain.ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
		existing, err := u.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, wrapDB(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.AlreadyExists("user", *req.Email)
		}
		user.Email = *req.Email
	}

	if req.FullName != nil {
		if *req.FullName != "" {
			if err := userdomain.ValidateFullName(*req.FullName); err != nil {
				return nil, err
			}
		}
		user.FullName = *req.FullName
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		return nil, wrapDB(err)
	}
	return userdto.FromEntity(updated), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.fetch(ctx, id); err != nil {
		return err
	}

	deleted, err := u.userRepo.Delete(ctx, id)
	if err != nil {
		return wrapDB(err)
	}
	if !deleted {
		return apperr.NotFound("user", id)
	}
	return nil
}

func (u *userUsecase) ActivateUser(ctx context.Context, id string) (*userdto.UserResponse, error) {
	return u.setActive(ctx, id, true)
}

func (u *userUsecase) DeactivateUser(ctx context.Context, id string) (*userdto.UserResponse, error) {
	return u.setActive(ctx, id, false)
}

func (u *userUsecase) setActive(ctx context.Context, id string, active bool) (*userdto.UserResponse, error) {
	user, err := u.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		return nil, wrapDB(err)
	}
	return userdto.FromEntity(updated), nil
}

func (u *userUsecase) fetch(ctx context.Context, id string) (*userdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapDB(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", id)
	}
	return user, nil
}

// wrapDB keeps taxonomy errors from the repository intact and classifies
// everything else as a database failure.
func wrapDB(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Database(err)
}
