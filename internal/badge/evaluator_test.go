package badge

import (
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		requirement string
		stats       Stats
		want        bool
	}{
		{"7 day streak not reached", Streak7Days, Stats{LongestStreak: 6}, false},
		{"7 day streak reached", Streak7Days, Stats{LongestStreak: 7}, true},
		{"30 day streak not reached", Streak30Days, Stats{LongestStreak: 29}, false},
		{"30 day streak reached", Streak30Days, Stats{LongestStreak: 45}, true},
		{"mood entries", MoodEntries14, Stats{MoodEntryCount: 14}, true},
		{"mood entries short", MoodEntries14, Stats{MoodEntryCount: 13}, false},
		{"journal entries", JournalEntries20, Stats{JournalEntryCount: 20}, true},
		{"active habits", ActiveHabits3, Stats{ActiveHabitCount: 3}, true},
		{"active habits short", ActiveHabits3, Stats{ActiveHabitCount: 2}, false},
		{"80 percent", Completion80Percent, Stats{CompletionPercentage: 80}, true},
		{"80 percent short", Completion80Percent, Stats{CompletionPercentage: 79.9}, false},
		{"90 percent", Completion90Percent, Stats{CompletionPercentage: 85}, false},
		{"no predicate", PerfectWeek, Stats{LongestStreak: 100, CompletionPercentage: 100}, false},
		{"unknown key", "100_day_streak", Stats{LongestStreak: 1000}, false},
		{"empty stats", Streak7Days, Stats{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.requirement, tt.stats); got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.requirement, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	got := Evaluate(Stats{LongestStreak: 8, ActiveHabitCount: 3})

	if len(got) != len(Catalog()) {
		t.Fatalf("Evaluate() returned %d badges, want %d", len(got), len(Catalog()))
	}

	earned := map[string]bool{}
	for _, b := range got {
		if b.Earned {
			earned[b.ID] = true
		}
	}
	if len(earned) != 2 || !earned["frost_focused"] || !earned["habit_master"] {
		t.Errorf("earned = %v, want frost_focused and habit_master", earned)
	}
}

func TestCatalogIsCopied(t *testing.T) {
	c := Catalog()
	c[0].Name = "changed"

	b, ok := ByID(c[0].ID)
	if !ok {
		t.Fatalf("ByID(%q) not found", c[0].ID)
	}
	if b.Name == "changed" {
		t.Error("Catalog() exposed the shared slice")
	}
	if _, ok := ByID("missing"); ok {
		t.Error("ByID(missing) should not be found")
	}
}
