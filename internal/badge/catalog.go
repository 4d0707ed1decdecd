package badge

import (
	"github.com/winterarc/tracker/internal/model"
)

// Requirement keys understood by Check.
const (
	Streak7Days         = "7_day_streak"
	Streak30Days        = "30_day_streak"
	MoodEntries14       = "14_mood_entries"
	JournalEntries20    = "20_journal_entries"
	ActiveHabits3       = "3_active_habits"
	Completion80Percent = "80_percent_completion"
	Completion90Percent = "90_percent_completion"
	EarlyCompletion     = "early_completion"
	PerfectWeek         = "perfect_week"
)

var catalog = []model.Badge{
	{
		ID:          "frost_focused",
		Name:        "Frost Focused",
		Description: "Complete all habits for 7 consecutive days",
		Icon:        "❄️",
		Requirement: Streak7Days,
	},
	{
		ID:          "winter_warrior",
		Name:        "Winter Warrior",
		Description: "Complete all habits for 30 consecutive days",
		Icon:        "⚔️",
		Requirement: Streak30Days,
	},
	{
		ID:          "consistency_penguin",
		Name:        "Consistency Penguin",
		Description: "Log your mood for 14 consecutive days",
		Icon:        "🐧",
		Requirement: MoodEntries14,
	},
	{
		ID:          "mindful_monk",
		Name:        "Mindful Monk",
		Description: "Complete 20 journal entries",
		Icon:        "🧘",
		Requirement: JournalEntries20,
	},
	{
		ID:          "early_bird",
		Name:        "Early Bird",
		Description: "Complete all habits before 12 PM for 5 days",
		Icon:        "🐦",
		Requirement: EarlyCompletion,
	},
	{
		ID:          "perfect_week",
		Name:        "Perfect Week",
		Description: "Complete all daily activities (habits, mood, journal) for 7 days",
		Icon:        "⭐",
		Requirement: PerfectWeek,
	},
	{
		ID:          "habit_master",
		Name:        "Habit Master",
		Description: "Create and maintain 3 active habits",
		Icon:        "🎯",
		Requirement: ActiveHabits3,
	},
	{
		ID:          "summit_seeker",
		Name:        "Summit Seeker",
		Description: "Reach 80% overall completion",
		Icon:        "🏔️",
		Requirement: Completion80Percent,
	},
	{
		ID:          "winter_champion",
		Name:        "Winter Champion",
		Description: "Complete your entire winter arc with 90%+ consistency",
		Icon:        "🏆",
		Requirement: Completion90Percent,
	},
}

// Catalog returns a copy of the badge catalog.
func Catalog() []model.Badge {
	out := make([]model.Badge, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog badge.
func ByID(id string) (model.Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}
