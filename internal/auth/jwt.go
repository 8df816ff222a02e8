package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Company credential: a self-issued HS256 token minted at register/login.
// The subject is the company id; nothing else is trusted from the payload.

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type Claims struct {
	CompanyID string `json:"id"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Generate mints a credential for the company.
func (t *TokenIssuer) Generate(companyID string) (string, error) {
	now := time.Now()
	claims := Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   companyID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies signature and expiry and returns the claims. Expiry is
// reported separately so the API can distinguish the two failure modes.
func (t *TokenIssuer) Parse(rawToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.CompanyID == "" && claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	if claims.CompanyID == "" {
		claims.CompanyID = claims.Subject
	}
	return claims, nil
}
