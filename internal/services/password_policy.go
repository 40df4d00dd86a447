package services

import "strings"

const minPasswordLength = 6

// ValidatePassword applies the registration password policy and returns
// an empty string when the password is acceptable.
func ValidatePassword(password string) string {
	if len(password) < minPasswordLength {
		return "password must be at least 6 characters"
	}
	return ""
}

// ValidateUsername returns an empty string when the username is
// acceptable. Uniqueness is the repository's concern.
func ValidateUsername(username string) string {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "username is required"
	}
	if len(trimmed) > 64 {
		return "username is too long"
	}
	return ""
}
