package repository

import (
	"context"
	"errors"
	"fmt"

	"commerce_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicateEmail is returned when an insert or update hits the unique
// email constraint.
var ErrDuplicateEmail = errors.New("email already in use")

// UserRepository defines operations for user data.
// FindByEmail is the only projection that includes the password hash; it
// exists solely for the login comparison.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id int, role string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateLoginState(ctx context.Context, id int, verified, isLoggedIn bool) error
	SetLoggedIn(ctx context.Context, id int, loggedIn bool) error
	Delete(ctx context.Context, id int) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (name, email, password_hash, role, verified, is_logged_in)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, user.Name, user.Email, user.PasswordHash, user.Role, user.Verified, user.IsLoggedIn).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email, password hash included
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, name, email, password_hash, role, verified, is_logged_in, created_at, updated_at
            FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.Verified, &user.IsLoggedIn, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, the service layer decides
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by ID without the password hash
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, name, email, role, verified, is_logged_in, created_at, updated_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role,
		&user.Verified, &user.IsLoggedIn, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindAll retrieves all users without password hashes
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, name, email, role, verified, is_logged_in, created_at, updated_at
            FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Role,
			&u.Verified, &u.IsLoggedIn, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateRole changes a user's role and returns the updated record
func (r *userRepository) UpdateRole(ctx context.Context, id int, role string) (*model.User, error) {
	user := &model.User{}
	sql := `UPDATE users SET role = $1 WHERE id = $2
            RETURNING id, name, email, role, verified, is_logged_in, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, role, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role,
		&user.Verified, &user.IsLoggedIn, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return user, nil
}

// Update writes name, email, role and password hash for an existing user
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET name = $1, email = $2, role = $3, password_hash = $4
            WHERE id = $5 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, user.Name, user.Email, user.Role, user.PasswordHash, user.ID).
		Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateLoginState persists the verified and logged-in flags together,
// as the login flow flips both
func (r *userRepository) UpdateLoginState(ctx context.Context, id int, verified, isLoggedIn bool) error {
	sql := `UPDATE users SET verified = $1, is_logged_in = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, sql, verified, isLoggedIn, id)
	if err != nil {
		return fmt.Errorf("failed to update login state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetLoggedIn flips only the logged-in flag
func (r *userRepository) SetLoggedIn(ctx context.Context, id int, loggedIn bool) error {
	sql := `UPDATE users SET is_logged_in = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, sql, loggedIn, id)
	if err != nil {
		return fmt.Errorf("failed to set logged-in flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a user
func (r *userRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM users WHERE id = $1`
	tag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
