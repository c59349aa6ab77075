package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateToken generates a signed access token for the user.
	GenerateToken(ctx context.Context, username string) (string, time.Time, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
