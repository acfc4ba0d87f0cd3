package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/slipcheck/platform/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	encoded, err := hasher.Hash("winter-is-coming")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := hasher.Verify("winter-is-coming", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong-password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	_, err := hasher.Verify("anything", "not-a-hash")
	assert.ErrorIs(t, err, auth.ErrMalformedHash)

	_, err = hasher.Verify("anything", "$argon2id$v=19$m=65536,t=1,p=4$!!!$hash")
	assert.ErrorIs(t, err, auth.ErrMalformedHash)
}

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("2b1f8c1e-1111-4222-8333-444455556666", "owner@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "2b1f8c1e-1111-4222-8333-444455556666", claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret_a", time.Hour).Generate("id", "a@b.c")
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret_b", time.Hour).Validate(token)
	assert.Error(t, err)
}
