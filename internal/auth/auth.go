// Package auth provisions and verifies login credentials for employees.
package auth

import (
	"context"
	"errors"
	"strings"

	"employee-portal/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactive           = errors.New("account is deactivated")
)

// CredentialProvider creates a login identity for an email/password pair.
type CredentialProvider interface {
	SignUp(ctx context.Context, email, password string) error
}

// Verifier checks an email/password pair and returns the matching user.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (models.User, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
