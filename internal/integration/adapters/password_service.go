// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/task-tracker/backend/internal/application/adapter"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
	"github.com/task-tracker/backend/internal/domain/valueobject"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 10

// passwordService implements the adapter.PasswordService interface.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 10.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
// A malformed stored hash returns an error just like a mismatch; callers
// cannot tell which part failed.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength enforces the server-side length floor. The full
// strength rule gates the client's submit action; the floor is the only part
// repeated here.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	verdict := valueobject.EvaluatePassword(password)
	if !verdict.Checks.Length {
		return domainerror.ErrWeakPassword
	}
	return nil
}
