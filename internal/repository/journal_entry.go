package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/model"
)

var (
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

type JournalEntryRepository interface {
	Upsert(ctx context.Context, entry *model.JournalEntry) (*model.JournalEntry, error)
	ByID(ctx context.Context, entryID string) (*model.JournalEntry, error)
	ForDate(ctx context.Context, userID, date string) (*model.JournalEntry, error)
	Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.JournalEntry, error)
	Count(ctx context.Context, userID string) (int, error)
	UpdateContent(ctx context.Context, entry *model.JournalEntry) error
	Delete(ctx context.Context, entryID string) error
}

type journalEntryRepository struct {
	db *sqlx.DB
}

func NewJournalEntryRepository(db *sqlx.DB) JournalEntryRepository {
	return &journalEntryRepository{db: db}
}

func (r *journalEntryRepository) Upsert(ctx context.Context, entry *model.JournalEntry) (*model.JournalEntry, error) {
	query := `INSERT INTO journal_entries (id, user_id, date, content, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, date) DO UPDATE
	          SET content = excluded.content, updated_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Content,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.ForDate(ctx, entry.UserID, entry.Date)
}

func (r *journalEntryRepository) ByID(ctx context.Context, entryID string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE id = $1`

	err := r.db.GetContext(ctx, entry, query, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJournalEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *journalEntryRepository) ForDate(ctx context.Context, userID, date string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE user_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, entry, query, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJournalEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Entries lists a user's journal entries, newest first. Each bound of
// dateRange applies on its own.
func (r *journalEntryRepository) Entries(ctx context.Context, userID string, dateRange model.DateRange) ([]*model.JournalEntry, error) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if dateRange.Start != "" {
		args = append(args, dateRange.Start)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if dateRange.End != "" {
		args = append(args, dateRange.End)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT * FROM journal_entries WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY date DESC`

	entries := []*model.JournalEntry{}
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalEntryRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *journalEntryRepository) UpdateContent(ctx context.Context, entry *model.JournalEntry) error {
	query := `UPDATE journal_entries SET content = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, entry.Content, entry.UpdatedAt, entry.ID)
	if err != nil {
		return err
	}

	return expectRow(result, ErrJournalEntryNotFound)
}

func (r *journalEntryRepository) Delete(ctx context.Context, entryID string) error {
	query := `DELETE FROM journal_entries WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, entryID)
	if err != nil {
		return err
	}

	return expectRow(result, ErrJournalEntryNotFound)
}
