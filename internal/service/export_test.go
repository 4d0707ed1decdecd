package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/winterarc/tracker/internal/repository"
)

type memStorage struct {
	objects map[string][]byte
}

func (m *memStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return err
	}
	m.objects[key] = buf.Bytes()
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) PresignedURL(_ context.Context, key string) (string, error) {
	return "https://storage.test/" + key, nil
}

func newExportService(s *testServices, store *memStorage) *ExportService {
	habitRepo := repository.NewHabitRepository(s.db)
	entryRepo := repository.NewHabitEntryRepository(s.db)
	moodRepo := repository.NewMoodEntryRepository(s.db)
	journalRepo := repository.NewJournalEntryRepository(s.db)

	if store == nil {
		return NewExportService(habitRepo, entryRepo, moodRepo, journalRepo, nil, "exports")
	}
	return NewExportService(habitRepo, entryRepo, moodRepo, journalRepo, store, "exports")
}

func TestExportInline(t *testing.T) {
	s := newTestServices(t)
	seedArc(t, s)

	result, err := newExportService(s, nil).Export(context.Background(), "u1", refNow)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if result.URL != "" || result.Data == nil {
		t.Fatalf("Export() = %+v, want inline data", result)
	}
	if len(result.Data.Habits) != 4 {
		t.Errorf("Habits = %d, want 4 including deleted", len(result.Data.Habits))
	}
	if len(result.Data.HabitEntries) != 10 {
		t.Errorf("HabitEntries = %d, want 10", len(result.Data.HabitEntries))
	}
}

func TestExportUpload(t *testing.T) {
	s := newTestServices(t)
	seedArc(t, s)
	store := &memStorage{objects: map[string][]byte{}}
	svc := newExportService(s, store)

	result, err := svc.Export(context.Background(), "u1", refNow)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	wantKey := svc.Key("u1", refNow)
	if result.Key != wantKey || result.URL != "https://storage.test/"+wantKey || result.Data != nil {
		t.Errorf("Export() = %+v, want key %s", result, wantKey)
	}

	var decoded Export
	if err := json.Unmarshal(store.objects[wantKey], &decoded); err != nil {
		t.Fatalf("stored export is not JSON: %v", err)
	}
	if decoded.UserID != "u1" || len(decoded.Habits) != 4 {
		t.Errorf("stored export = %+v", decoded)
	}
}

func TestExportKey(t *testing.T) {
	svc := &ExportService{keyPrefix: "exports"}
	if got, want := svc.Key("u1", refNow), "exports/u1/2025-10-20-1760972400.json"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}
