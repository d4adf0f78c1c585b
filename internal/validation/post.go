package validation

import (
	"fmt"
	"strings"

	"inkwell/internal/models"
)

const (
	maxTitleLen   = 200
	maxDescLen    = 500
	maxCommentLen = 1000
)

// ValidateTitle checks post titles (required, 1-200 characters).
func ValidateTitle(title string) error {
	n := len(strings.TrimSpace(title))
	if n < 1 || n > maxTitleLen {
		return fmt.Errorf("title is required and must be less than %d characters", maxTitleLen)
	}
	return nil
}

// ValidateContent checks post bodies (required, non-empty).
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ValidateDesc checks the optional short description.
func ValidateDesc(desc string) error {
	if len(desc) > maxDescLen {
		return fmt.Errorf("description must be less than %d characters", maxDescLen)
	}
	return nil
}

// ValidateCategory checks the optional category against the known set.
func ValidateCategory(category string) error {
	if category == "" {
		return nil
	}
	if !models.IsValidCategory(category) {
		return fmt.Errorf("invalid category")
	}
	return nil
}

// ValidateCommentContent checks comment bodies (1-1000 characters).
func ValidateCommentContent(content string) error {
	n := len(strings.TrimSpace(content))
	if n < 1 || n > maxCommentLen {
		return fmt.Errorf("comment content is required and must be less than %d characters", maxCommentLen)
	}
	return nil
}
