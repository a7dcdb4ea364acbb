package services

import (
	"context"
	"fmt"

	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/pkg/jwt"
)

// TokenIssuer signs claims into a session token
type TokenIssuer interface {
	Issue(claims map[string]interface{}) (string, error)
}

type authService struct {
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(tokens TokenIssuer) AuthService {
	return &authService{tokens: tokens}
}

// IssueToken signs every field of the request body as a claim. An email
// claim is required because the authorization gate keys on it.
func (s *authService) IssueToken(ctx context.Context, claims models.SessionRequest) (string, error) {
	if _, ok := jwt.EmailFromClaims(claims); !ok {
		return "", ErrEmailRequired
	}

	token, err := s.tokens.Issue(claims)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
