package model

import (
	"time"
)

type JournalEntry struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Date      string     `db:"date" json:"date"`
	Content   string     `db:"content" json:"content"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

// DateRange is an inclusive range of canonical dates. Either bound may be empty.
type DateRange struct {
	Start string
	End   string
}
