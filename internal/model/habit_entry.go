package model

import (
	"time"
)

// HabitEntry is the completion record of one habit on one calendar day.
// There is at most one entry per (habit, date).
type HabitEntry struct {
	ID        string    `db:"id" json:"id"`
	HabitID   string    `db:"habit_id" json:"habitId"`
	UserID    string    `db:"user_id" json:"userId"`
	Date      string    `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// HabitEntryFilter narrows an entry listing. Empty fields are ignored.
type HabitEntryFilter struct {
	UserID  string
	HabitID string
	Date    string
}
