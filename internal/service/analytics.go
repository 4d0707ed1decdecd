package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/winterarc/tracker/internal/analytics"
	"github.com/winterarc/tracker/internal/badge"
	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
	"golang.org/x/sync/errgroup"
)

type AnalyticsService struct {
	habitRepo   repository.HabitRepository
	entryRepo   repository.HabitEntryRepository
	moodRepo    repository.MoodEntryRepository
	journalRepo repository.JournalEntryRepository
	concurrency int
}

func NewAnalyticsService(
	habitRepo repository.HabitRepository,
	entryRepo repository.HabitEntryRepository,
	moodRepo repository.MoodEntryRepository,
	journalRepo repository.JournalEntryRepository,
	concurrency int,
) *AnalyticsService {
	return &AnalyticsService{
		habitRepo:   habitRepo,
		entryRepo:   entryRepo,
		moodRepo:    moodRepo,
		journalRepo: journalRepo,
		concurrency: max(1, concurrency),
	}
}

// snapshot is a user's loaded state plus the analytics computed from it.
type snapshot struct {
	habits       []*model.Habit
	analytics    *model.AnalyticsData
	moodCount    int
	journalCount int
}

// load reads every active habit's history concurrently. The first failing read
// cancels the others.
func (s *AnalyticsService) load(ctx context.Context, userID string, now time.Time) (*snapshot, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.ActiveHabits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	histories := make([][]*model.HabitEntry, len(habits))
	var moods []*model.MoodEntry
	var journalCount int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, h := range habits {
		g.Go(func() error {
			entries, err := s.entryRepo.Entries(gctx, model.HabitEntryFilter{UserID: userID, HabitID: h.ID})
			if err != nil {
				return fmt.Errorf("failed to load entries of habit %s: %w", h.ID, err)
			}
			histories[i] = entries
			return nil
		})
	}
	g.Go(func() error {
		var err error
		moods, err = s.moodRepo.Entries(gctx, userID, model.DateRange{})
		if err != nil {
			return fmt.Errorf("failed to load mood entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		journalCount, err = s.journalRepo.Count(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count journal entries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	history := make(map[string][]*model.HabitEntry, len(habits))
	for i, h := range habits {
		history[h.ID] = histories[i]
	}

	data, err := analytics.Analytics(analytics.Input{
		Habits:  habits,
		History: history,
		Moods:   moods,
	}, now)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		habits:       habits,
		analytics:    data,
		moodCount:    len(moods),
		journalCount: journalCount,
	}, nil
}

func (s *snapshot) badgeStats() badge.Stats {
	longest := 0
	for _, streak := range s.analytics.Streaks {
		longest = max(longest, streak.Longest)
	}

	return badge.Stats{
		LongestStreak:        longest,
		MoodEntryCount:       s.moodCount,
		JournalEntryCount:    s.journalCount,
		ActiveHabitCount:     len(s.habits),
		CompletionPercentage: s.analytics.ConsistencyPercentage,
	}
}

// Analytics computes streaks and arc statistics for the user as of now.
func (s *AnalyticsService) Analytics(ctx context.Context, userID string, now time.Time) (*model.AnalyticsData, error) {
	snap, err := s.load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return snap.analytics, nil
}

// Badges evaluates the catalog against the user's statistics as of now.
func (s *AnalyticsService) Badges(ctx context.Context, userID string, now time.Time) ([]model.BadgeStatus, error) {
	snap, err := s.load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return badge.Evaluate(snap.badgeStats()), nil
}

// Stats builds the dashboard numbers for selectedDate as of now.
func (s *AnalyticsService) Stats(ctx context.Context, userID, selectedDate string, now time.Time) (*model.AppStats, error) {
	if err := validation.ValidateDate("date", selectedDate); err != nil {
		return nil, err
	}

	snap, err := s.load(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	entries, err := s.dayEntries(ctx, userID, selectedDate, snap.habits)
	if err != nil {
		return nil, err
	}

	stats := analytics.AppStatsFor(analytics.StatsInput{
		Habits:       snap.habits,
		Entries:      entries,
		Analytics:    snap.analytics,
		Badges:       badge.Evaluate(snap.badgeStats()),
		SelectedDate: selectedDate,
	}, now)

	return &stats, nil
}

// DailyProgress summarizes what the user logged on date.
func (s *AnalyticsService) DailyProgress(ctx context.Context, userID, date string) (*model.DailyProgress, error) {
	err := validation.Required("userId", userID, "date", date)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateDate("date", date); err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.ActiveHabits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	entries, err := s.dayEntries(ctx, userID, date, habits)
	if err != nil {
		return nil, err
	}

	mood, err := s.moodRepo.ForDate(ctx, userID, date)
	if err != nil && !errors.Is(err, repository.ErrMoodEntryNotFound) {
		return nil, fmt.Errorf("failed to load mood entry: %w", err)
	}

	journal, err := s.journalRepo.ForDate(ctx, userID, date)
	if err != nil && !errors.Is(err, repository.ErrJournalEntryNotFound) {
		return nil, fmt.Errorf("failed to load journal entry: %w", err)
	}

	progress := analytics.DailyProgressFor(date, habits, entries, mood, journal)
	return &progress, nil
}

// dayEntries returns the entries of date that belong to the given habits.
func (s *AnalyticsService) dayEntries(ctx context.Context, userID, date string, habits []*model.Habit) ([]*model.HabitEntry, error) {
	entries, err := s.entryRepo.Entries(ctx, model.HabitEntryFilter{UserID: userID, Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for %s: %w", date, err)
	}

	active := lo.SliceToMap(habits, func(h *model.Habit) (string, struct{}) { return h.ID, struct{}{} })
	return lo.Filter(entries, func(e *model.HabitEntry, _ int) bool {
		_, ok := active[e.HabitID]
		return ok
	}), nil
}
