package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/winterarc/tracker/internal/ctxkeys"
	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
)

type HabitService struct {
	repo      repository.HabitRepository
	entryRepo repository.HabitEntryRepository
}

func NewHabitService(repo repository.HabitRepository, entryRepo repository.HabitEntryRepository) *HabitService {
	return &HabitService{
		repo:      repo,
		entryRepo: entryRepo,
	}
}

// visible reports whether a record owned by ownerID may be served to the
// request's principal. Requests without a verified principal see everything.
func visible(ctx context.Context, ownerID string) bool {
	principal := ctxkeys.UserID(ctx)
	return principal == "" || principal == ownerID
}

func (s *HabitService) Create(ctx context.Context, userID, category, title string, description *string) (*model.Habit, error) {
	title = strings.TrimSpace(title)

	err := validation.Required("userId", userID, "category", category, "title", title)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}

	habit := &model.Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Category:    category,
		Title:       title,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.repo.Create(ctx, habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

// Habits lists the user's active habits, oldest first.
func (s *HabitService) Habits(ctx context.Context, userID string) ([]*model.Habit, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}
	return s.repo.ActiveHabits(ctx, userID)
}

func (s *HabitService) ByID(ctx context.Context, habitID string) (*model.Habit, error) {
	habit, err := s.repo.ByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !visible(ctx, habit.UserID) {
		return nil, repository.ErrHabitNotFound
	}
	return habit, nil
}

// Update applies the non-nil fields of patch. Other columns are never touched.
func (s *HabitService) Update(ctx context.Context, habitID string, patch model.HabitPatch) (*model.Habit, error) {
	habit, err := s.ByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if patch.Category != nil {
		if err := validation.ValidateCategory(*patch.Category); err != nil {
			return nil, err
		}
		habit.Category = *patch.Category
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if err := validation.Required("title", title); err != nil {
			return nil, err
		}
		if err := validation.ValidateTitle(title); err != nil {
			return nil, err
		}
		habit.Title = title
	}
	if patch.Description != nil {
		habit.Description = patch.Description
	}
	if patch.IsActive != nil {
		habit.IsActive = *patch.IsActive
	}

	now := time.Now().UTC()
	habit.UpdatedAt = &now

	err = s.repo.Update(ctx, habit)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return habit, nil
}

// Delete soft-deletes the habit. Its entries are kept for history.
func (s *HabitService) Delete(ctx context.Context, habitID string) error {
	_, err := s.ByID(ctx, habitID)
	if err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, habitID, time.Now().UTC())
}

// LogEntry records whether the habit was completed on date. Logging the same
// habit and date again replaces completed and notes, so completed must be
// given explicitly.
func (s *HabitService) LogEntry(ctx context.Context, userID, habitID, date string, completed *bool, notes *string) (*model.HabitEntry, error) {
	err := validation.Required("userId", userID, "habitId", habitID, "date", date)
	if err != nil {
		return nil, err
	}
	if err := validation.RequiredValue("completed", completed != nil); err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", date); err != nil {
		return nil, err
	}

	habit, err := s.ByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, repository.ErrHabitNotFound
	}

	entry, err := s.entryRepo.Upsert(ctx, &model.HabitEntry{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		UserID:    userID,
		Date:      date,
		Completed: *completed,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save habit entry: %w", err)
	}

	return entry, nil
}

// Entries lists entries matching filter, newest date first.
func (s *HabitService) Entries(ctx context.Context, filter model.HabitEntryFilter) ([]*model.HabitEntry, error) {
	if err := validation.Required("userId", filter.UserID); err != nil {
		return nil, err
	}
	if filter.Date != "" {
		if err := validation.ValidateDate("date", filter.Date); err != nil {
			return nil, err
		}
	}
	return s.entryRepo.Entries(ctx, filter)
}
