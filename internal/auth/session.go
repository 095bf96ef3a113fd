// Package auth verifies the identity provider's access tokens. Token
// issuance, refresh and password flows stay with the provider; this service
// only needs a stable user ID per request, carried in an explicit Session
// instead of ambient global state.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSubject    = errors.New("token carries no subject")
)

// Session identifies the authenticated user for the duration of one request.
type Session struct {
	UserID string
}

// Verifier validates provider-issued HS256 tokens against the shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates an access token and extracts the subject
// claim as the user ID. Subjects must be UUIDs, matching what the provider
// issues.
func (v *Verifier) VerifyToken(tokenString string) (*Session, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrNoSubject
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrNoSubject
	}

	return &Session{UserID: claims.Subject}, nil
}
