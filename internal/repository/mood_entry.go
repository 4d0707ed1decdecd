package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/model"
)

var (
	ErrMoodEntryNotFound = errors.New("mood entry not found")
)

type MoodEntryRepository interface {
	Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error)
	ByID(ctx context.Context, entryID string) (*model.MoodEntry, error)
	ForDate(ctx context.Context, userID, date string) (*model.MoodEntry, error)
	Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.MoodEntry, error)
	Count(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, entry *model.MoodEntry) error
	Delete(ctx context.Context, entryID string) error
}

type moodEntryRepository struct {
	db *sqlx.DB
}

func NewMoodEntryRepository(db *sqlx.DB) MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

// Upsert writes the entry for (user_id, date). On conflict the levels, sleep and
// notes are replaced and updated_at is set; created_at keeps its first value.
func (r *moodEntryRepository) Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	query := `INSERT INTO mood_entries (id, user_id, date, mood, energy, focus, sleep, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (user_id, date) DO UPDATE
	          SET mood = excluded.mood, energy = excluded.energy, focus = excluded.focus,
	              sleep = excluded.sleep, notes = excluded.notes, updated_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Mood,
		entry.Energy,
		entry.Focus,
		entry.Sleep,
		entry.Notes,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.ForDate(ctx, entry.UserID, entry.Date)
}

func (r *moodEntryRepository) ByID(ctx context.Context, entryID string) (*model.MoodEntry, error) {
	entry := &model.MoodEntry{}
	query := `SELECT * FROM mood_entries WHERE id = $1`

	err := r.db.GetContext(ctx, entry, query, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMoodEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *moodEntryRepository) ForDate(ctx context.Context, userID, date string) (*model.MoodEntry, error) {
	entry := &model.MoodEntry{}
	query := `SELECT * FROM mood_entries WHERE user_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, entry, query, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMoodEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Entries lists a user's mood entries, newest first, limited to dateRange when
// both bounds are set.
func (r *moodEntryRepository) Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.MoodEntry, error) {
	entries := []*model.MoodEntry{}

	var err error
	if dateRange.Start != "" && dateRange.End != "" {
		query := `SELECT * FROM mood_entries WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC`
		err = r.db.SelectContext(ctx, &entries, query, userID, dateRange.Start, dateRange.End)
	} else {
		query := `SELECT * FROM mood_entries WHERE user_id = $1 ORDER BY date DESC`
		err = r.db.SelectContext(ctx, &entries, query, userID)
	}
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *moodEntryRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM mood_entries WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *moodEntryRepository) Update(ctx context.Context, entry *model.MoodEntry) error {
	query := `UPDATE mood_entries
	          SET mood = $1, energy = $2, focus = $3, sleep = $4, notes = $5, updated_at = $6
	          WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		entry.Mood,
		entry.Energy,
		entry.Focus,
		entry.Sleep,
		entry.Notes,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return err
	}

	return expectRow(result, ErrMoodEntryNotFound)
}

func (r *moodEntryRepository) Delete(ctx context.Context, entryID string) error {
	query := `DELETE FROM mood_entries WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, entryID)
	if err != nil {
		return err
	}

	return expectRow(result, ErrMoodEntryNotFound)
}
