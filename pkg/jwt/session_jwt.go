package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of a session token.
const DefaultTTL = 365 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for missing, malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid session token")

// SessionTokenService issues and verifies the HS256 tokens carried in the session cookie
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokenService creates a SessionTokenService. A non-positive ttl falls back to DefaultTTL.
func NewSessionTokenService(secret string, ttl time.Duration) (*SessionTokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt: session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs claims into a token that expires after the configured ttl.
// The caller's map is not modified.
func (s *SessionTokenService) Issue(claims map[string]interface{}) (string, error) {
	now := s.now()

	payload := jwt.MapClaims{}
	for k, v := range claims {
		payload[k] = v
	}
	payload["iat"] = now.Unix()
	payload["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the decoded claims.
func (s *SessionTokenService) Verify(tokenString string) (map[string]interface{}, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return map[string]interface{}(claims), nil
}

// EmailFromClaims extracts the "email" claim, if present.
func EmailFromClaims(claims map[string]interface{}) (string, bool) {
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
