package analytics

import (
	"testing"
	"time"

	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
)

var refNow = time.Date(2025, 10, 20, 15, 0, 0, 0, time.UTC)

// daysAgo returns the canonical date n days before refNow.
func daysAgo(n int) string {
	return dates.Format(refNow.AddDate(0, 0, -n))
}

func completedOn(habitID string, days ...string) []*model.HabitEntry {
	entries := make([]*model.HabitEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, &model.HabitEntry{
			ID:        habitID + "-" + d,
			HabitID:   habitID,
			UserID:    "user-1",
			Date:      d,
			Completed: true,
		})
	}
	return entries
}

func TestStreakForHabit(t *testing.T) {
	skipped := &model.HabitEntry{HabitID: "h", Date: daysAgo(1), Completed: false}

	tests := []struct {
		name    string
		history []*model.HabitEntry
		want    model.StreakData
	}{
		{
			name:    "no history",
			history: nil,
			want:    model.StreakData{},
		},
		{
			name:    "only uncompleted entries",
			history: []*model.HabitEntry{skipped},
			want:    model.StreakData{},
		},
		{
			name:    "today not logged yet keeps the streak",
			history: completedOn("h", daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5)),
			want:    model.StreakData{Current: 5, Longest: 5, Total: 5},
		},
		{
			name:    "today logged counts",
			history: completedOn("h", daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(3)),
			want:    model.StreakData{Current: 4, Longest: 4, Total: 4},
		},
		{
			name:    "gap ending at today",
			history: completedOn("h", daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(5), daysAgo(6)),
			want:    model.StreakData{Current: 3, Longest: 3, Total: 5},
		},
		{
			name:    "gap in the past",
			history: completedOn("h", daysAgo(10), daysAgo(11), daysAgo(12), daysAgo(15), daysAgo(16)),
			want:    model.StreakData{Current: 0, Longest: 3, Total: 5},
		},
		{
			name:    "missing yesterday breaks the streak",
			history: completedOn("h", daysAgo(0), daysAgo(2), daysAgo(3)),
			want:    model.StreakData{Current: 1, Longest: 2, Total: 3},
		},
		{
			name:    "single old completion",
			history: completedOn("h", daysAgo(30)),
			want:    model.StreakData{Current: 0, Longest: 1, Total: 1},
		},
		{
			name:    "isolated past completions",
			history: completedOn("h", daysAgo(3), daysAgo(8)),
			want:    model.StreakData{Current: 0, Longest: 1, Total: 2},
		},
		{
			name:    "uncompleted yesterday breaks like a missing one",
			history: append(completedOn("h", daysAgo(0), daysAgo(2)), skipped),
			want:    model.StreakData{Current: 1, Longest: 1, Total: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StreakForHabit(tt.history, refNow)
			if got != tt.want {
				t.Errorf("StreakForHabit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStreakForHabitWalkIsBounded(t *testing.T) {
	var days []string
	for i := range 120 {
		days = append(days, daysAgo(i))
	}

	got := StreakForHabit(completedOn("h", days...), refNow)
	if got.Current != maxStreakWalk {
		t.Errorf("current = %d, want %d", got.Current, maxStreakWalk)
	}
	if got.Longest != 120 {
		t.Errorf("longest = %d, want 120", got.Longest)
	}
	if got.Total != 120 {
		t.Errorf("total = %d, want 120", got.Total)
	}
}

func TestStreakForHabitUnorderedInput(t *testing.T) {
	history := completedOn("h", daysAgo(3), daysAgo(1), daysAgo(2))

	got := StreakForHabit(history, refNow)
	want := model.StreakData{Current: 3, Longest: 3, Total: 3}
	if got != want {
		t.Errorf("StreakForHabit() = %+v, want %+v", got, want)
	}
}
