package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
)

// MoodInput is one day's mood record as submitted.
type MoodInput struct {
	UserID string
	Date   string
	Mood   int
	Energy int
	Focus  int
	Sleep  *float64
	Notes  *string
}

type MoodService struct {
	repo repository.MoodEntryRepository
}

func NewMoodService(repo repository.MoodEntryRepository) *MoodService {
	return &MoodService{repo: repo}
}

func validateLevels(levels ...int) error {
	for _, level := range levels {
		if err := validation.ValidateLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// Upsert stores the user's mood for in.Date, replacing any earlier record of
// that day.
func (s *MoodService) Upsert(ctx context.Context, in MoodInput) (*model.MoodEntry, error) {
	err := validation.Required("userId", in.UserID, "date", in.Date)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", in.Date); err != nil {
		return nil, err
	}
	if err := validateLevels(in.Mood, in.Energy, in.Focus); err != nil {
		return nil, err
	}
	if err := validation.ValidateSleep(in.Sleep); err != nil {
		return nil, err
	}

	entry, err := s.repo.Upsert(ctx, &model.MoodEntry{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Date:      in.Date,
		Mood:      in.Mood,
		Energy:    in.Energy,
		Focus:     in.Focus,
		Sleep:     in.Sleep,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save mood entry: %w", err)
	}

	return entry, nil
}

// ForDate returns the user's entry for date, or nil when there is none.
func (s *MoodService) ForDate(ctx context.Context, userID, date string) (*model.MoodEntry, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", date); err != nil {
		return nil, err
	}

	entry, err := s.repo.ForDate(ctx, userID, date)
	if errors.Is(err, repository.ErrMoodEntryNotFound) {
		return nil, nil
	}
	return entry, err
}

// Entries lists the user's entries newest first. The range applies only when
// both bounds are given.
func (s *MoodService) Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.MoodEntry, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}
	if dateRange.Start == "" || dateRange.End == "" {
		return s.repo.Entries(ctx, userID, model.DateRange{})
	}
	if err := validation.ValidateDate("startDate", dateRange.Start); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("endDate", dateRange.End); err != nil {
		return nil, err
	}
	return s.repo.Entries(ctx, userID, dateRange)
}

func (s *MoodService) ByID(ctx context.Context, entryID string) (*model.MoodEntry, error) {
	entry, err := s.repo.ByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !visible(ctx, entry.UserID) {
		return nil, repository.ErrMoodEntryNotFound
	}
	return entry, nil
}

// Update applies the non-nil fields of patch.
func (s *MoodService) Update(ctx context.Context, entryID string, patch model.MoodPatch) (*model.MoodEntry, error) {
	entry, err := s.ByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if patch.Mood != nil {
		entry.Mood = *patch.Mood
	}
	if patch.Energy != nil {
		entry.Energy = *patch.Energy
	}
	if patch.Focus != nil {
		entry.Focus = *patch.Focus
	}
	if patch.Sleep != nil {
		entry.Sleep = patch.Sleep
	}
	if patch.Notes != nil {
		entry.Notes = patch.Notes
	}

	if err := validateLevels(entry.Mood, entry.Energy, entry.Focus); err != nil {
		return nil, err
	}
	if err := validation.ValidateSleep(entry.Sleep); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.UpdatedAt = &now

	err = s.repo.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}

	return entry, nil
}

func (s *MoodService) Delete(ctx context.Context, entryID string) error {
	_, err := s.ByID(ctx, entryID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, entryID)
}
