// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/task-tracker/backend/internal/application/adapter"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
)

// DefaultTokenExpiry is the default lifetime of an access token.
const DefaultTokenExpiry = 2 * time.Hour

const tokenIssuer = "task-tracker"

// CustomClaims represents the custom claims carried by access tokens.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
// Verification is a pure HMAC signature check; no store round trip.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance. The secret comes from
// configuration and is never defaulted; an empty secret fails every call.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateToken mints a signed token whose subject is the user's ID.
func (s *tokenService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if len(s.secret) == 0 {
		return "", domainerror.ErrMissingSigningSecret
	}

	now := time.Now().UTC()
	claims := CustomClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims.
// Expiry is exact: no clock-skew leeway is granted.
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, domainerror.ErrMissingSigningSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	out := &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
