// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password using bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// A malformed stored hash yields an error, the same as a mismatch.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates if a password meets the minimum floor.
	ValidatePasswordStrength(password string) error
}
