package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	token, err := issuer.Generate("company-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "company-123", claims.CompanyID)
	assert.Equal(t, "company-123", claims.Subject)
}

func TestTokenIssuerRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)
	other := NewTokenIssuer("other-secret", 60)

	token, err := issuer.Generate("company-123")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuerRejectsExpired(t *testing.T) {
	issuer := &TokenIssuer{
		secret: []byte("test-secret"),
		ttl:    -time.Minute,
	}

	token, err := issuer.Generate("company-123")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuerRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 60)

	_, err := issuer.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
