package model

import (
	"time"
)

const (
	MoodLevelMin = 1
	MoodLevelMax = 5
)

type MoodEntry struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Date      string     `db:"date" json:"date"`
	Mood      int        `db:"mood" json:"mood"`
	Energy    int        `db:"energy" json:"energy"`
	Focus     int        `db:"focus" json:"focus"`
	Sleep     *float64   `db:"sleep" json:"sleep"`
	Notes     *string    `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

// Average returns the mean of mood, energy and focus.
func (m *MoodEntry) Average() float64 {
	return float64(m.Mood+m.Energy+m.Focus) / 3
}

type MoodPatch struct {
	Mood   *int
	Energy *int
	Focus  *int
	Sleep  *float64
	Notes  *string
}
