package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"employee-portal/internal/models"
)

// RoleLookup resolves the employee id and role that belong to an email.
type RoleLookup func(ctx context.Context, email string) (employeeID, role string)

type MemoryProvider struct {
	mu     sync.Mutex
	users  map[string]models.User
	lookup RoleLookup
	cost   int
}

func NewMemoryProvider(lookup RoleLookup) *MemoryProvider {
	return &MemoryProvider{
		users:  make(map[string]models.User),
		lookup: lookup,
		cost:   bcrypt.DefaultCost,
	}
}

func (p *MemoryProvider) SignUp(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.users[key]; ok {
		return ErrEmailTaken
	}
	p.users[key] = models.User{
		ID:           uuid.NewString(),
		Email:        key,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	return nil
}

func (p *MemoryProvider) Verify(ctx context.Context, email, password string) (models.User, error) {
	key := normalizeEmail(email)
	p.mu.Lock()
	user, ok := p.users[key]
	p.mu.Unlock()
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	p.mu.Lock()
	stored := p.users[key]
	stored.LastLoginAt = &now
	p.users[key] = stored
	p.mu.Unlock()

	user.LastLoginAt = &now
	if p.lookup != nil {
		user.EmployeeID, user.Role = p.lookup(ctx, key)
	}
	return user, nil
}

// Deactivate marks the account inactive. Unknown emails are ignored.
func (p *MemoryProvider) Deactivate(email string) {
	key := normalizeEmail(email)
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.users[key]; ok {
		u.IsActive = false
		p.users[key] = u
	}
}
