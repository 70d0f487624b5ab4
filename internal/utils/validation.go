package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

const (
	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// PasswordPolicy holds the optional composition rules. Only the length
// check is active by default.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: PasswordMinLength}
}

// ValidateRequiredFields reports all missing or blank fields in one message.
func ValidateRequiredFields(data map[string]string, fields []string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(data[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return E(CodeValidation, "", fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// ValidateEmail returns the trimmed, lowercased address on success.
func ValidateEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", E(CodeValidation, "", "All required fields must be filled", nil)
	}
	if !emailRe.MatchString(trimmed) {
		return "", E(CodeValidation, "", "Invalid email format", nil)
	}
	return trimmed, nil
}

func ValidatePassword(password string, policy PasswordPolicy) error {
	if policy.MinLength <= 0 {
		policy.MinLength = PasswordMinLength
	}
	if len(password) < policy.MinLength {
		return E(CodeValidation, "", fmt.Sprintf("Password must be at least %d characters", policy.MinLength), nil)
	}
	if policy.RequireUppercase && !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return E(CodeValidation, "", "Password must contain uppercase letter", nil)
	}
	if policy.RequireLowercase && !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return E(CodeValidation, "", "Password must contain lowercase letter", nil)
	}
	if policy.RequireNumber && !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return E(CodeValidation, "", "Password must contain number", nil)
	}
	return nil
}

// ValidateName returns the trimmed name on success.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", E(CodeValidation, "", "All required fields must be filled", nil)
	}
	if len(trimmed) < NameMinLength {
		return "", E(CodeValidation, "", fmt.Sprintf("Name must be at least %d characters", NameMinLength), nil)
	}
	if len(trimmed) > NameMaxLength {
		return "", E(CodeValidation, "", fmt.Sprintf("Name must not exceed %d characters", NameMaxLength), nil)
	}
	if !nameRe.MatchString(trimmed) {
		return "", E(CodeValidation, "", "Name contains invalid characters", nil)
	}
	return trimmed, nil
}
