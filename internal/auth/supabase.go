package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// SupabaseProvider signs users up against a Supabase (GoTrue) auth endpoint.
type SupabaseProvider struct {
	client gotrue.Client
}

// NewSupabaseProvider targets {baseURL}/auth/v1. A nil client gets a 15s timeout.
func NewSupabaseProvider(baseURL, apiKey string, client *http.Client) *SupabaseProvider {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	c := gotrue.New("", apiKey).
		WithCustomGoTrueURL(strings.TrimRight(baseURL, "/") + "/auth/v1").
		WithClient(*client)
	return &SupabaseProvider{client: c}
}

// GoTrue reports these codes when the email already has an account.
var takenCodes = []string{"user_already_exists", "email_exists", "User already registered"}

func (p *SupabaseProvider) SignUp(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.client.Signup(types.SignupRequest{
		Email:    normalizeEmail(email),
		Password: password,
	})
	if err == nil {
		return nil
	}
	for _, code := range takenCodes {
		if strings.Contains(err.Error(), code) {
			return ErrEmailTaken
		}
	}
	return fmt.Errorf("signup failed: %w", err)
}
