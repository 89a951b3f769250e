package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestSupabaseProvider_SignUp(t *testing.T) {
	var got signUpBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewSupabaseProvider(srv.URL+"/", "anon", srv.Client())
	require.NoError(t, p.SignUp(context.Background(), "Ada@Example.com", "Abcde1"))
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Abcde1", got.Password)
}

func TestSupabaseProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantMsg []string
	}{
		{
			name:   "existing user",
			status: http.StatusUnprocessableEntity,
			body:   `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`,
			wantIs: ErrEmailTaken,
		},
		{
			name:    "weak password",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":422,"error_code":"weak_password","msg":"Password should be at least 6 characters"}`,
			wantMsg: []string{"Password should be at least 6 characters"},
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantMsg: []string{"502", "upstream down"},
		},
		{
			name:   "email exists",
			status: http.StatusUnprocessableEntity,
			body:   `{"code":422,"error_code":"email_exists","msg":"Email address already registered"}`,
			wantIs: ErrEmailTaken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewSupabaseProvider(srv.URL, "anon", srv.Client()).SignUp(context.Background(), "a@b.co", "Abcde1")
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			for _, m := range tt.wantMsg {
				assert.Contains(t, err.Error(), m)
			}
		})
	}
}

func TestSupabaseProvider_CanceledContext(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewSupabaseProvider(srv.URL, "anon", srv.Client()).SignUp(ctx, "a@b.co", "Abcde1")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
