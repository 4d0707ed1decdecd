package model

import (
	"time"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}

// UserBadge would record an award. Nothing persists awards yet.
type UserBadge struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	BadgeID  string    `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}

// BadgeStatus is a catalog badge together with whether the user meets it.
type BadgeStatus struct {
	Badge
	Earned bool `json:"earned"`
}
