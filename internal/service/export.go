package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/storage"
	"github.com/winterarc/tracker/internal/validation"
	"golang.org/x/sync/errgroup"
)

// Export is a complete snapshot of one user's records.
type Export struct {
	UserID         string                `json:"userId"`
	ExportedAt     time.Time             `json:"exportedAt"`
	Habits         []*model.Habit        `json:"habits"`
	HabitEntries   []*model.HabitEntry   `json:"habitEntries"`
	MoodEntries    []*model.MoodEntry    `json:"moodEntries"`
	JournalEntries []*model.JournalEntry `json:"journalEntries"`
}

// ExportResult locates an uploaded export. Without storage, Data carries the
// export itself and Key and URL are empty.
type ExportResult struct {
	Key  string  `json:"key,omitempty"`
	URL  string  `json:"url,omitempty"`
	Data *Export `json:"data,omitempty"`
}

type ExportService struct {
	habitRepo   repository.HabitRepository
	entryRepo   repository.HabitEntryRepository
	moodRepo    repository.MoodEntryRepository
	journalRepo repository.JournalEntryRepository
	storage     storage.Storage
	keyPrefix   string
}

// NewExportService builds the service. store may be nil, in which case
// exports are returned inline.
func NewExportService(
	habitRepo repository.HabitRepository,
	entryRepo repository.HabitEntryRepository,
	moodRepo repository.MoodEntryRepository,
	journalRepo repository.JournalEntryRepository,
	store storage.Storage,
	keyPrefix string,
) *ExportService {
	return &ExportService{
		habitRepo:   habitRepo,
		entryRepo:   entryRepo,
		moodRepo:    moodRepo,
		journalRepo: journalRepo,
		storage:     store,
		keyPrefix:   keyPrefix,
	}
}

// Snapshot reads all of the user's records concurrently.
func (s *ExportService) Snapshot(ctx context.Context, userID string, now time.Time) (*Export, error) {
	if err := validation.Required("userId", userID); err != nil {
		return nil, err
	}

	export := &Export{UserID: userID, ExportedAt: now.UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		export.Habits, err = s.habitRepo.AllHabits(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		export.HabitEntries, err = s.entryRepo.Entries(gctx, model.HabitEntryFilter{UserID: userID})
		return err
	})
	g.Go(func() error {
		var err error
		export.MoodEntries, err = s.moodRepo.Entries(gctx, userID, model.DateRange{})
		return err
	})
	g.Go(func() error {
		var err error
		export.JournalEntries, err = s.journalRepo.Entries(gctx, userID, model.DateRange{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read export data: %w", err)
	}

	return export, nil
}

// Export snapshots the user's records and uploads them when storage is
// configured.
func (s *ExportService) Export(ctx context.Context, userID string, now time.Time) (*ExportResult, error) {
	export, err := s.Snapshot(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		return &ExportResult{Data: export}, nil
	}

	body, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	key := s.Key(userID, now)
	err = s.storage.Save(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignedURL(ctx, key)
	if err != nil {
		return nil, err
	}

	slog.Info("export uploaded", "user_id", userID, "key", key, "bytes", len(body))
	return &ExportResult{Key: key, URL: url}, nil
}

// Key is the object key of the user's export taken at now.
func (s *ExportService) Key(userID string, now time.Time) string {
	name := fmt.Sprintf("%s-%d.json", dates.Format(now), now.Unix())
	return path.Join(s.keyPrefix, userID, name)
}
