// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/task-tracker/backend/internal/domain/error"
)

const testSecret = "test-secret-key"

func TestTokenServiceRoundTrip(t *testing.T) {
	service := NewTokenService(testSecret, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token, err := service.GenerateToken(ctx, userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	issuer := NewTokenService(testSecret, time.Hour)
	token, err := issuer.GenerateToken(ctx, userID, "user@example.com")
	require.NoError(t, err)

	verifier := NewTokenService("a-different-secret", time.Hour)
	_, err = verifier.ValidateToken(ctx, token)
	assert.Error(t, err)
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	service := NewTokenService(testSecret, time.Hour)

	// Sign an already-expired token with the same secret.
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID: userID.String(),
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			Subject:   userID.String(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(ctx, expired)
	assert.Error(t, err)
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService(testSecret, time.Hour)

	token, err := service.GenerateToken(ctx, uuid.New(), "user@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = service.ValidateToken(ctx, tampered)
	assert.Error(t, err)
}

func TestTokenServiceRejectsUnsignedToken(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService(testSecret, time.Hour)

	// alg=none must never validate.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(ctx, unsigned)
	assert.Error(t, err)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService(testSecret, time.Hour)

	_, err := service.ValidateToken(ctx, "not.a.token")
	assert.Error(t, err)
}

func TestTokenServiceRequiresSecret(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("", time.Hour)

	_, err := service.GenerateToken(ctx, uuid.New(), "user@example.com")
	assert.ErrorIs(t, err, domainerror.ErrMissingSigningSecret)

	_, err = service.ValidateToken(ctx, "anything")
	assert.ErrorIs(t, err, domainerror.ErrMissingSigningSecret)
}
