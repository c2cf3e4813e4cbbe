package model

import "time"

const (
	RoleAdmin    = "Administrator"
	RoleEmployee = "Employee"
)

// User represents a registered principal with a role
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	Verified     bool      `json:"verified"`
	IsLoggedIn   bool      `json:"is_logged_in"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the body of POST /users/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /users/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateRoleRequest is the body of PUT /users/:id/role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=Administrator Employee"`
}

// ModifyUserRequest allows partial profile updates; a supplied password is re-hashed
type ModifyUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=Administrator Employee"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
