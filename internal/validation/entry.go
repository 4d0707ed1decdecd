package validation

import (
	"strings"

	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
)

const maxContentLength = 50_000

// ValidateDate requires a canonical YYYY-MM-DD date.
func ValidateDate(field, value string) error {
	if !dates.Valid(value) {
		return invalid("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}

// ParseLevel parses a mood, energy or focus level. Only "1" through "5" are
// accepted.
func ParseLevel(value string) (int, error) {
	if len(value) == 1 && value[0] >= '0'+model.MoodLevelMin && value[0] <= '0'+model.MoodLevelMax {
		return int(value[0] - '0'), nil
	}
	return 0, invalid("mood, energy, and focus must be between %d and %d", model.MoodLevelMin, model.MoodLevelMax)
}

// ValidateSleep accepts a missing value or hours within a single day.
func ValidateSleep(hours *float64) error {
	if hours == nil {
		return nil
	}
	if *hours < 0 || *hours > 24 {
		return invalid("sleep must be between 0 and 24 hours")
	}
	return nil
}

// ValidateContent requires non-blank journal content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return invalid("content is required")
	}
	if len(content) > maxContentLength {
		return invalid("content is too long (max %d characters)", maxContentLength)
	}
	return nil
}

// ValidateLevel checks an already-numeric mood, energy or focus level.
func ValidateLevel(level int) error {
	if level < model.MoodLevelMin || level > model.MoodLevelMax {
		return invalid("mood, energy, and focus must be between %d and %d", model.MoodLevelMin, model.MoodLevelMax)
	}
	return nil
}

// RequireLevels fails unless mood, energy and focus were all supplied.
func RequireLevels(mood, energy, focus bool) error {
	if !mood || !energy || !focus {
		return invalid("mood, energy, and focus are required")
	}
	return nil
}
