package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoodham/bucksbot/internal/auth"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", "bucksbot", time.Hour)

	token, err := tm.Generate("alice", auth.RoleModerator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleModerator, claims.Role)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "bucksbot", claims.Issuer)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret", "bucksbot", time.Hour)
	other := auth.NewTokenManager("different", "bucksbot", time.Hour)

	token, err := tm.Generate("alice", auth.RoleModerator)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	minter := auth.NewTokenManager("secret", "someone-else", time.Hour)
	verifier := auth.NewTokenManager("secret", "bucksbot", time.Hour)

	token, err := minter.Generate("alice", auth.RoleModerator)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := auth.NewTokenManager("secret", "bucksbot", -time.Minute)

	token, err := tm.Generate("alice", auth.RoleModerator)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := auth.NewTokenManager("secret", "bucksbot", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
