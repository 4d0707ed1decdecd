package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
)

func TestJournalLifecycle(t *testing.T) {
	svc := newTestServices(t).journals
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "u1", "2025-10-20", "  "); !validation.IsValidationError(err) {
		t.Errorf("Upsert() blank content error = %v, want validation error", err)
	}

	entry, err := svc.Upsert(ctx, "u1", "2025-10-20", "# Day 20\n\nCold plunge **done**.")
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	html, err := svc.Render(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(html), "<strong>done</strong>") {
		t.Errorf("Render() = %q, want bold text", html)
	}

	updated, err := svc.Update(ctx, entry.ID, "rewritten")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Content != "rewritten" || updated.UpdatedAt == nil {
		t.Errorf("Update() = %+v", updated)
	}

	if _, err := svc.Update(ctx, entry.ID, ""); !validation.IsValidationError(err) {
		t.Errorf("Update() empty content error = %v, want validation error", err)
	}

	if _, err := svc.Entries(ctx, "u1", model.DateRange{Start: "yesterday"}); !validation.IsValidationError(err) {
		t.Errorf("Entries() bad start error = %v, want validation error", err)
	}

	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Render(ctx, entry.ID); !errors.Is(err, repository.ErrJournalEntryNotFound) {
		t.Errorf("Render() after delete error = %v, want ErrJournalEntryNotFound", err)
	}
}
