package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Generate("u1", []string{"user", "admin"})
	req.NoError(err)
	req.NotEmpty(signed)

	claims, err := tokens.Validate(signed)
	req.NoError(err)
	req.Equal("u1", claims.UserID)
	req.Equal([]string{"user", "admin"}, claims.Roles)
}

func TestTokenManager_Rejects_Expired(t *testing.T) {
	req := require.New(t)
	tokens := NewTokenManager("test-secret", -time.Minute)

	signed, err := tokens.Generate("u1", []string{"user"})
	req.NoError(err)

	_, err = tokens.Validate(signed)
	req.Error(err)
}

func TestTokenManager_Rejects_Wrong_Secret(t *testing.T) {
	req := require.New(t)
	signer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	signed, err := signer.Generate("u1", []string{"user"})
	req.NoError(err)

	_, err = verifier.Validate(signed)
	req.Error(err)
}
