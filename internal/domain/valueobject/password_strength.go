// Package valueobject defines immutable domain value objects.
package valueobject

// PasswordStrength classifies a candidate password as weak, medium or strong.
type PasswordStrength string

const (
	PasswordStrengthWeak   PasswordStrength = "weak"
	PasswordStrengthMedium PasswordStrength = "medium"
	PasswordStrengthStrong PasswordStrength = "strong"
)

// MinPasswordLength is the minimum length floor enforced on registration.
const MinPasswordLength = 8

// PasswordChecks holds the independent checks performed on a candidate password.
type PasswordChecks struct {
	Length      bool `json:"length"`
	Lowercase   bool `json:"lowercase"`
	Uppercase   bool `json:"uppercase"`
	Number      bool `json:"number"`
	SpecialChar bool `json:"specialChar"`
}

// PasswordVerdict is the result of evaluating a candidate password.
// It is computed per candidate and never stored.
type PasswordVerdict struct {
	Strength PasswordStrength `json:"strength"`
	Checks   PasswordChecks   `json:"checks"`
}

// EvaluatePassword classifies a candidate password.
//
// The strength rule counts the length check once in the passed total but also
// gates "strong" on a second, higher length bound (>= 10). This asymmetry is
// intentional and must not be "fixed".
func EvaluatePassword(candidate string) PasswordVerdict {
	checks := PasswordChecks{
		Length: len(candidate) >= MinPasswordLength,
	}

	// Character classes are ASCII: anything outside [A-Za-z0-9] counts as special.
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			checks.Lowercase = true
		case r >= 'A' && r <= 'Z':
			checks.Uppercase = true
		case r >= '0' && r <= '9':
			checks.Number = true
		default:
			checks.SpecialChar = true
		}
	}

	passedCount := 0
	for _, passed := range []bool{checks.Length, checks.Lowercase, checks.Uppercase, checks.Number, checks.SpecialChar} {
		if passed {
			passedCount++
		}
	}

	strength := PasswordStrengthWeak
	if checks.Length && passedCount >= 4 && len(candidate) >= 10 {
		strength = PasswordStrengthStrong
	} else if checks.Length && passedCount >= 3 {
		strength = PasswordStrengthMedium
	}

	return PasswordVerdict{
		Strength: strength,
		Checks:   checks,
	}
}
