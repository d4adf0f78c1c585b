package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks registration display names.
func ValidateName(name string) error {
	n := len(strings.TrimSpace(name))
	if n < 2 || n > 50 {
		return fmt.Errorf("name must be between 2 and 50 characters")
	}
	return nil
}

// ValidateEmail checks email address format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

// ValidatePassword checks minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	return nil
}
