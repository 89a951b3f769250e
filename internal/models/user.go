package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a login credential paired with an employee record by email.
type User struct {
	ID           string     `json:"id" db:"id"`
	EmployeeID   string     `json:"employee_id,omitempty" db:"employee_id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never expose in JSON
	Role         string     `json:"role" db:"role"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response with JWT token
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// JWTClaims represents the JWT token claims
type JWTClaims struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// Roles allowed to create employees through the API.
const (
	RoleAdmin = "Admin"
	RoleHR    = "HR"
)
