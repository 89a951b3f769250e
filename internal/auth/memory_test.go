package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(lookup RoleLookup) *MemoryProvider {
	p := NewMemoryProvider(lookup)
	p.cost = bcrypt.MinCost
	return p
}

func TestMemoryProvider_SignUpAndVerify(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(func(ctx context.Context, email string) (string, string) {
		require.Equal(t, "ada@example.com", email)
		return "FP1", "Admin"
	})

	require.NoError(t, p.SignUp(ctx, " Ada@Example.com ", "Abcde1"))

	user, err := p.Verify(ctx, "ada@example.com", "Abcde1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "FP1", user.EmployeeID)
	assert.Equal(t, "Admin", user.Role)
	assert.NotNil(t, user.LastLoginAt)
	assert.NotEqual(t, "Abcde1", user.PasswordHash)
}

func TestMemoryProvider_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(nil)

	require.NoError(t, p.SignUp(ctx, "a@b.co", "Abcde1"))
	require.ErrorIs(t, p.SignUp(ctx, "A@B.CO", "Xyzab2"), ErrEmailTaken)
}

func TestMemoryProvider_VerifyFailures(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(nil)
	require.NoError(t, p.SignUp(ctx, "a@b.co", "Abcde1"))

	_, err := p.Verify(ctx, "a@b.co", "wrong1A")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Verify(ctx, "nobody@b.co", "Abcde1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	p.Deactivate("a@b.co")
	_, err = p.Verify(ctx, "a@b.co", "Abcde1")
	require.ErrorIs(t, err, ErrInactive)
}
