package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"employee-portal/internal/models"
)

type PostgresProvider struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

func NewPostgresProvider(pool *pgxpool.Pool, log logrus.FieldLogger) *PostgresProvider {
	return &PostgresProvider{pool: pool, log: log}
}

func (p *PostgresProvider) SignUp(ctx context.Context, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO users (email, password_hash, is_active, created_at)
		 VALUES ($1, $2, true, NOW())`,
		normalizeEmail(email), string(hashedPassword))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (p *PostgresProvider) Verify(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	err := p.pool.QueryRow(ctx,
		`SELECT u.id::text, COALESCE(e.id, ''), u.email, u.password_hash, COALESCE(e.role, ''),
		        u.is_active, u.last_login_at, u.created_at
		 FROM users u
		 LEFT JOIN employees e ON lower(e.email) = u.email
		 WHERE u.email = $1
		 ORDER BY e.created_at DESC NULLS LAST
		 LIMIT 1`,
		normalizeEmail(email)).Scan(
		&user.ID, &user.EmployeeID, &user.Email, &user.PasswordHash,
		&user.Role, &user.IsActive, &user.LastLoginAt, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if _, err := p.pool.Exec(ctx, "UPDATE users SET last_login_at = NOW() WHERE id = $1", user.ID); err != nil {
		// not fatal for the login
		p.log.WithError(err).WithField("user_id", user.ID).Warn("failed to update last login time")
	}
	return user, nil
}
