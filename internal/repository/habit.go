package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/model"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
)

type HabitRepository interface {
	Create(ctx context.Context, habit *model.Habit) error
	ByID(ctx context.Context, habitID string) (*model.Habit, error)
	ActiveHabits(ctx context.Context, userID string) ([]*model.Habit, error)
	AllHabits(ctx context.Context, userID string) ([]*model.Habit, error)
	Update(ctx context.Context, habit *model.Habit) error
	SoftDelete(ctx context.Context, habitID string, at time.Time) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *model.Habit) error {
	query := `INSERT INTO habits (id, user_id, category, title, description, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Category,
		habit.Title,
		habit.Description,
		habit.IsActive,
		habit.CreatedAt,
	)

	return err
}

func (r *habitRepository) ByID(ctx context.Context, habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	query := `SELECT * FROM habits WHERE id = $1`

	err := r.db.GetContext(ctx, habit, query, habitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}

	return habit, nil
}

func (r *habitRepository) ActiveHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	habits := []*model.Habit{}
	query := `SELECT * FROM habits WHERE user_id = $1 AND is_active = $2 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &habits, query, userID, true)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

// AllHabits includes soft-deleted habits.
func (r *habitRepository) AllHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	habits := []*model.Habit{}
	query := `SELECT * FROM habits WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &habits, query, userID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *model.Habit) error {
	query := `UPDATE habits
	          SET category = $1, title = $2, description = $3, is_active = $4, updated_at = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		habit.Category,
		habit.Title,
		habit.Description,
		habit.IsActive,
		habit.UpdatedAt,
		habit.ID,
	)
	if err != nil {
		return err
	}

	return expectRow(result, ErrHabitNotFound)
}

// SoftDelete deactivates a habit. Its entries stay in place.
func (r *habitRepository) SoftDelete(ctx context.Context, habitID string, at time.Time) error {
	query := `UPDATE habits SET is_active = $1, deleted_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, false, at, habitID)
	if err != nil {
		return err
	}

	return expectRow(result, ErrHabitNotFound)
}

// expectRow maps an update or delete that touched nothing to notFound.
func expectRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
