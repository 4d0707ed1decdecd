package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/model"
)

type HabitEntryRepository interface {
	Upsert(ctx context.Context, entry *model.HabitEntry) (*model.HabitEntry, error)
	Entries(ctx context.Context, filter model.HabitEntryFilter) ([]*model.HabitEntry, error)
}

type habitEntryRepository struct {
	db *sqlx.DB
}

func NewHabitEntryRepository(db *sqlx.DB) HabitEntryRepository {
	return &habitEntryRepository{db: db}
}

// Upsert writes the entry for (habit_id, date), replacing completed and notes
// when one already exists. The stored row is returned.
func (r *habitEntryRepository) Upsert(ctx context.Context, entry *model.HabitEntry) (*model.HabitEntry, error) {
	query := `INSERT INTO habit_entries (id, habit_id, user_id, date, completed, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (habit_id, date) DO UPDATE
	          SET completed = excluded.completed, notes = excluded.notes`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.HabitID,
		entry.UserID,
		entry.Date,
		entry.Completed,
		entry.Notes,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	stored := &model.HabitEntry{}
	query = `SELECT * FROM habit_entries WHERE habit_id = $1 AND date = $2`
	err = r.db.GetContext(ctx, stored, query, entry.HabitID, entry.Date)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Entries lists a user's entries, newest date first.
func (r *habitEntryRepository) Entries(ctx context.Context, filter model.HabitEntryFilter) ([]*model.HabitEntry, error) {
	conds := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.HabitID != "" {
		args = append(args, filter.HabitID)
		conds = append(conds, fmt.Sprintf("habit_id = $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}

	query := `SELECT * FROM habit_entries WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY date DESC, created_at DESC`

	entries := []*model.HabitEntry{}
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
