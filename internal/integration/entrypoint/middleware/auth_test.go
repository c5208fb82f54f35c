// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/task-tracker/backend/internal/integration/adapters"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, string, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenService := adapters.NewTokenService("middleware-test-secret", time.Hour)
	userID := uuid.New()

	token, err := tokenService.GenerateToken(context.Background(), userID, "user@example.com")
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(NewAuthMiddleware(tokenService).Authenticate())
	engine.GET("/protected", func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})

	return engine, token, userID
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	engine, token, userID := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthMiddlewareRejections(t *testing.T) {
	engine, _, _ := newAuthTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddlewareRejectsForeignToken(t *testing.T) {
	engine, _, _ := newAuthTestRouter(t)

	// Token signed under a different secret.
	foreignService := adapters.NewTokenService("a-different-secret", time.Hour)
	foreign, err := foreignService.GenerateToken(context.Background(), uuid.New(), "evil@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
