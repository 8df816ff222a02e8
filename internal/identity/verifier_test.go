package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject, issuer string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifierResolvesSubject(t *testing.T) {
	v := NewJWTVerifier("id-secret", "")

	token := signToken(t, "id-secret", "ext-user-1", "")
	subject, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ext-user-1", subject)
}

func TestJWTVerifierRejectsWrongSecret(t *testing.T) {
	v := NewJWTVerifier("id-secret", "")

	token := signToken(t, "other-secret", "ext-user-1", "")
	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTVerifierRejectsMissingSubject(t *testing.T) {
	v := NewJWTVerifier("id-secret", "")

	token := signToken(t, "id-secret", "", "")
	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTVerifierChecksIssuer(t *testing.T) {
	v := NewJWTVerifier("id-secret", "https://idp.example.com")

	good := signToken(t, "id-secret", "ext-user-1", "https://idp.example.com")
	subject, err := v.Verify(context.Background(), good)
	require.NoError(t, err)
	assert.Equal(t, "ext-user-1", subject)

	bad := signToken(t, "id-secret", "ext-user-1", "https://evil.example.com")
	_, err = v.Verify(context.Background(), bad)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
