package core

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionClaims bind the account identity into the signed token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// SessionIssuer mints and checks the signed bearer tokens handed to
// clients after a successful signup or login. Tokens are stateless: the
// only server-side secret involved is the signing key.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionIssuer(secret []byte, ttl time.Duration) *SessionIssuer {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionIssuer{secret: secret, ttl: ttl}
}

// Issue signs a token asserting the given account identity for the
// configured validity window.
func (si *SessionIssuer) Issue(accountID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(si.ttl)),
		},
		Email: email,
	})

	return token.SignedString(si.secret)
}

// Verify checks signature and expiry and returns the account id the
// token was issued for.
func (si *SessionIssuer) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return si.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrSessionExpired
		}
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
