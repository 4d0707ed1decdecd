package model

import (
	"time"
)

const (
	HabitCategoryMind  = "mind"
	HabitCategoryBody  = "body"
	HabitCategorySkill = "skill"
)

// HabitCategories is the closed set of categories a habit can belong to.
var HabitCategories = []string{HabitCategoryMind, HabitCategoryBody, HabitCategorySkill}

type Habit struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Category    string     `db:"category" json:"category"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	IsActive    bool       `db:"is_active" json:"isActive"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}

// HabitPatch carries the whitelisted fields of a partial habit update.
// Nil fields are left untouched.
type HabitPatch struct {
	Category    *string
	Title       *string
	Description *string
	IsActive    *bool
}
