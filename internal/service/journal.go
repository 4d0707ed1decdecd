package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/winterarc/tracker/internal/markdown"
	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
)

type JournalService struct {
	repo   repository.JournalEntryRepository
	parser *markdown.Parser
}

func NewJournalService(repo repository.JournalEntryRepository, parser *markdown.Parser) *JournalService {
	return &JournalService{
		repo:   repo,
		parser: parser,
	}
}

// Upsert stores the user's journal for date, replacing any earlier content of
// that day.
func (s *JournalService) Upsert(ctx context.Context, userID, date, content string) (*model.JournalEntry, error) {
	err := validation.Required("userId", userID, "date", date)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", date); err != nil {
		return nil, err
	}
	if err := validation.ValidateContent(content); err != nil {
		return nil, err
	}

	entry, err := s.repo.Upsert(ctx, &model.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	return entry, nil
}

// ForDate returns the user's entry for date, or nil when there is none.
func (s *JournalService) ForDate(ctx context.Context, userID, date string) (*model.JournalEntry, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", date); err != nil {
		return nil, err
	}

	entry, err := s.repo.ForDate(ctx, userID, date)
	if errors.Is(err, repository.ErrJournalEntryNotFound) {
		return nil, nil
	}
	return entry, err
}

// Entries lists the user's entries newest first. Each bound applies on its own.
func (s *JournalService) Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.JournalEntry, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}
	if dateRange.Start != "" {
		if err := validation.ValidateDate("startDate", dateRange.Start); err != nil {
			return nil, err
		}
	}
	if dateRange.End != "" {
		if err := validation.ValidateDate("endDate", dateRange.End); err != nil {
			return nil, err
		}
	}
	return s.repo.Entries(ctx, userID, dateRange)
}

func (s *JournalService) ByID(ctx context.Context, entryID string) (*model.JournalEntry, error) {
	entry, err := s.repo.ByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !visible(ctx, entry.UserID) {
		return nil, repository.ErrJournalEntryNotFound
	}
	return entry, nil
}

func (s *JournalService) Update(ctx context.Context, entryID, content string) (*model.JournalEntry, error) {
	if err := validation.ValidateContent(content); err != nil {
		return nil, err
	}

	entry, err := s.ByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.Content = content
	entry.UpdatedAt = &now

	err = s.repo.UpdateContent(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return entry, nil
}

func (s *JournalService) Delete(ctx context.Context, entryID string) error {
	_, err := s.ByID(ctx, entryID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, entryID)
}

// Render returns the entry's content as HTML.
func (s *JournalService) Render(ctx context.Context, entryID string) ([]byte, error) {
	entry, err := s.ByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse([]byte(entry.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to render journal entry: %w", err)
	}

	return html, nil
}
