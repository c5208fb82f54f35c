// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a verified token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
// Verification is a pure signature check with no store round trip.
type TokenService interface {
	// GenerateToken mints a signed, expiring token for the given subject.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
