// Package badge holds the static badge catalog and the predicates deciding
// whether a user's statistics meet a badge requirement. Evaluation has no side
// effects; awards are not stored.
package badge

import (
	"github.com/samber/lo"
	"github.com/winterarc/tracker/internal/model"
)

// Stats is the statistics bundle requirements are checked against.
type Stats struct {
	LongestStreak        int
	MoodEntryCount       int
	JournalEntryCount    int
	ActiveHabitCount     int
	CompletionPercentage float64
}

// Check reports whether stats meet requirement. Requirements without a
// predicate, including early_completion and perfect_week, are never met.
func Check(requirement string, stats Stats) bool {
	switch requirement {
	case Streak7Days:
		return stats.LongestStreak >= 7
	case Streak30Days:
		return stats.LongestStreak >= 30
	case MoodEntries14:
		return stats.MoodEntryCount >= 14
	case JournalEntries20:
		return stats.JournalEntryCount >= 20
	case ActiveHabits3:
		return stats.ActiveHabitCount >= 3
	case Completion80Percent:
		return stats.CompletionPercentage >= 80
	case Completion90Percent:
		return stats.CompletionPercentage >= 90
	default:
		return false
	}
}

// Evaluate checks every catalog badge against stats.
func Evaluate(stats Stats) []model.BadgeStatus {
	return lo.Map(catalog, func(b model.Badge, _ int) model.BadgeStatus {
		return model.BadgeStatus{Badge: b, Earned: Check(b.Requirement, stats)}
	})
}
