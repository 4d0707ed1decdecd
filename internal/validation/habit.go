package validation

import (
	"slices"
	"strings"

	"github.com/winterarc/tracker/internal/model"
)

const maxTitleLength = 200

// ValidateCategory checks category against the closed habit category set.
func ValidateCategory(category string) error {
	if !slices.Contains(model.HabitCategories, category) {
		return invalid("category must be one of %s", strings.Join(model.HabitCategories, ", "))
	}
	return nil
}

// ValidateTitle validates a habit title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return invalid("title is required")
	}

	if len(trimmed) > maxTitleLength {
		return invalid("title is too long (max %d characters)", maxTitleLength)
	}

	return nil
}
