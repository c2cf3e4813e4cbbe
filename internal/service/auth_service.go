package service

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user doesn't exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService provides registration, credential verification and session
// state handling. Tokens are stateless: logout flips the logged-in flag and
// the handler clears the cookie, but an issued token stays valid until its
// expiry.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, userID int) error
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account with the default Employee role.
// The duplicate check here is advisory; the unique index on email is what
// actually guards against a concurrent registration with the same address.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleEmployee,
		Verified:     false,
		IsLoggedIn:   false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login verifies credentials, marks the user verified and logged in, and
// issues a session token carrying the current role and verified flag.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	// First successful login also verifies the account
	user.Verified = true
	user.IsLoggedIn = true
	if err := s.userRepo.UpdateLoginState(ctx, user.ID, user.Verified, user.IsLoggedIn); err != nil {
		return nil, "", fmt.Errorf("failed to persist login state: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role, user.Verified)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Logout clears the logged-in flag. It does not invalidate outstanding tokens.
func (s *authService) Logout(ctx context.Context, userID int) error {
	if err := s.userRepo.SetLoggedIn(ctx, userID, false); err != nil {
		return fmt.Errorf("failed to clear logged-in flag: %w", err)
	}
	return nil
}
