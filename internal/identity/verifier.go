// Package identity is the boundary to the external identity provider that
// authenticates end users. The provider's validation algorithm is a black box
// behind the Verifier interface: implementations return the verified external
// subject id or an error, nothing more.
package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("identity token rejected")

// Verifier validates a raw provider token and resolves the external subject id.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

// JWTVerifier validates the provider's session tokens: HS256 over a shared
// secret, subject carried in the standard `sub` claim. The optional issuer is
// checked when configured.
type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (v *JWTVerifier) Verify(_ context.Context, rawToken string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", ErrUnauthorized
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
