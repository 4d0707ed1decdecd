package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	if err := Required("userId", "u1", "title", "Read"); err != nil {
		t.Errorf("Required() unexpected error: %v", err)
	}

	err := Required("userId", "u1", "category", "", "title", "")
	if err == nil || err.Error() != "category is required" {
		t.Errorf("Required() = %v, want category is required", err)
	}
	if !IsValidationError(err) {
		t.Error("Required() error should be a validation error")
	}
}

func TestRequiredValue(t *testing.T) {
	if err := RequiredValue("completed", true); err != nil {
		t.Errorf("RequiredValue() unexpected error: %v", err)
	}

	err := RequiredValue("completed", false)
	if !IsValidationError(err) || err.Error() != "completed is required" {
		t.Errorf("RequiredValue() = %v, want completed is required", err)
	}
}

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("create habit: %w", invalid("bad"))
	if !IsValidationError(wrapped) {
		t.Error("wrapped validation error not detected")
	}
	if IsValidationError(errors.New("database is locked")) {
		t.Error("plain error reported as validation error")
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range []string{"mind", "body", "skill"} {
		if err := ValidateCategory(c); err != nil {
			t.Errorf("ValidateCategory(%q) unexpected error: %v", c, err)
		}
	}
	for _, c := range []string{"", "Mind", "soul"} {
		if err := ValidateCategory(c); err == nil {
			t.Errorf("ValidateCategory(%q) expected error", c)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Cold shower", false},
		{"blank", "   ", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", maxTitleLength+1), true},
		{"max length", strings.Repeat("a", maxTitleLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for want := 1; want <= 5; want++ {
		got, err := ParseLevel(fmt.Sprint(want))
		if err != nil || got != want {
			t.Errorf("ParseLevel(%d) = %d, %v", want, got, err)
		}
	}

	for _, bad := range []string{"", "0", "6", "10", "3.0", "a", "-1"} {
		if _, err := ParseLevel(bad); err == nil {
			t.Errorf("ParseLevel(%q) expected error", bad)
		}
	}
}

func TestValidateSleep(t *testing.T) {
	hours := func(v float64) *float64 { return &v }

	if err := ValidateSleep(nil); err != nil {
		t.Errorf("nil sleep: %v", err)
	}
	if err := ValidateSleep(hours(7.5)); err != nil {
		t.Errorf("7.5 hours: %v", err)
	}
	if err := ValidateSleep(hours(-1)); err == nil {
		t.Error("negative sleep accepted")
	}
	if err := ValidateSleep(hours(25)); err == nil {
		t.Error("25 hours accepted")
	}
}

func TestValidateDateAndContent(t *testing.T) {
	if err := ValidateDate("date", "2025-10-01"); err != nil {
		t.Errorf("ValidateDate() unexpected error: %v", err)
	}
	if err := ValidateDate("date", "10/01/2025"); err == nil {
		t.Error("ValidateDate() accepted a non-canonical date")
	}
	if err := ValidateContent(" \n "); err == nil {
		t.Error("ValidateContent() accepted blank content")
	}
	if err := ValidateContent("Felt strong today."); err != nil {
		t.Errorf("ValidateContent() unexpected error: %v", err)
	}
}
