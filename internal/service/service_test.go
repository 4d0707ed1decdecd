package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/ctxkeys"
	"github.com/winterarc/tracker/internal/db"
	"github.com/winterarc/tracker/internal/markdown"
	"github.com/winterarc/tracker/internal/repository"
)

var refNow = time.Date(2025, 10, 20, 15, 0, 0, 0, time.UTC)

type testServices struct {
	db        *sqlx.DB
	habits    *HabitService
	moods     *MoodService
	journals  *JournalService
	analytics *AnalyticsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	conn, err := db.Init(db.DriverSQLite, filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close(conn) })

	if err := db.RunMigrations(conn.DB, db.DriverSQLite); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	habitRepo := repository.NewHabitRepository(conn)
	entryRepo := repository.NewHabitEntryRepository(conn)
	moodRepo := repository.NewMoodEntryRepository(conn)
	journalRepo := repository.NewJournalEntryRepository(conn)

	return &testServices{
		db:        conn,
		habits:    NewHabitService(habitRepo, entryRepo),
		moods:     NewMoodService(moodRepo),
		journals:  NewJournalService(journalRepo, markdown.NewParser()),
		analytics: NewAnalyticsService(habitRepo, entryRepo, moodRepo, journalRepo, 2),
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func asUser(userID string) context.Context {
	return ctxkeys.WithUserID(context.Background(), userID)
}
