package service

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"

	"github.com/jackc/pgx/v5"
)

var ErrEmailTaken = errors.New("email already in use")

// UserService provides admin and profile operations on user accounts
type UserService interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id int, role string) (*model.User, error)
	Modify(ctx context.Context, id int, req model.ModifyUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, id int, role string) (*model.User, error) {
	user, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Modify applies a partial profile update. A supplied password is hashed
// here, the only other place besides Register where hashing happens.
func (s *userService) Modify(ctx context.Context, id int, req model.ModifyUserRequest) (*model.User, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	// FindByID does not project the stored hash; fetch it before mutating
	withHash, err := s.userRepo.FindByEmail(ctx, existing.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored hash: %w", err)
	}
	if withHash != nil {
		existing.PasswordHash = withHash.PasswordHash
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Role != nil {
		existing.Role = *req.Role
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = hashed
	}

	if err := s.userRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	existing.PasswordHash = ""
	return existing, nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
