package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/winterarc/tracker/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompletionRate(t *testing.T) {
	entries := append(completedOn("a", "2025-10-01", "2025-10-02", "2025-10-03", "2025-10-05"),
		completedOn("b", "2025-10-02", "2025-10-04")...)
	entries = append(entries,
		&model.HabitEntry{HabitID: "b", Date: "2025-10-05", Completed: false},
		&model.HabitEntry{HabitID: "a", Date: "2025-10-06", Completed: true},
		&model.HabitEntry{HabitID: "a", Date: "2025-09-30", Completed: true},
	)

	got, err := CompletionRate(entries, 2, "2025-10-01", "2025-10-05")
	if err != nil {
		t.Fatalf("CompletionRate() error = %v", err)
	}

	want := Completion{Completed: 6, Possible: 10, Days: 5}
	if got != want {
		t.Errorf("CompletionRate() = %+v, want %+v", got, want)
	}
	if !approx(got.Ratio(), 0.6) {
		t.Errorf("Ratio() = %v, want 0.6", got.Ratio())
	}
}

func TestCompletionRateEmptyWindows(t *testing.T) {
	entries := completedOn("a", "2025-10-01")

	got, err := CompletionRate(entries, 0, "2025-10-01", "2025-10-05")
	if err != nil || got != (Completion{}) {
		t.Errorf("no habits: got %+v, %v", got, err)
	}

	got, err = CompletionRate(entries, 1, "2025-10-05", "2025-10-01")
	if err != nil || got != (Completion{}) {
		t.Errorf("inverted window: got %+v, %v", got, err)
	}
	if got.Ratio() != 0 {
		t.Errorf("Ratio() = %v, want 0", got.Ratio())
	}

	if _, err := CompletionRate(entries, 1, "2025-10-01", "not-a-date"); err == nil {
		t.Error("expected error for invalid bound")
	}
}

func TestMoodCorrelation(t *testing.T) {
	entries := []*model.HabitEntry{
		{HabitID: "a", Date: "2025-10-10", Completed: true},
		{HabitID: "b", Date: "2025-10-10", Completed: false},
	}
	moods := []*model.MoodEntry{
		{Date: "2025-10-10", Mood: 3, Energy: 4, Focus: 5},
		{Date: "2025-10-11", Mood: 5, Energy: 5, Focus: 5},
	}

	// (4 * 0.5 + 5 * 0) / 2
	if got := MoodCorrelation(moods, entries, 2); !approx(got, 1.0) {
		t.Errorf("MoodCorrelation() = %v, want 1.0", got)
	}
	if got := MoodCorrelation(nil, entries, 2); got != 0 {
		t.Errorf("no moods: got %v, want 0", got)
	}
	if got := MoodCorrelation(moods, entries, 0); got != 0 {
		t.Errorf("no habits: got %v, want 0", got)
	}
}

func TestAnalytics(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	in := Input{
		Habits: []*model.Habit{{ID: "h1"}, {ID: "h2"}},
		History: map[string][]*model.HabitEntry{
			"h1": completedOn("h1", "2025-10-16", "2025-10-17", "2025-10-18", "2025-10-19", "2025-10-20"),
		},
		Moods: []*model.MoodEntry{
			{Date: "2025-10-18", Mood: 2, Energy: 2, Focus: 2},
			{Date: "2025-10-10", Mood: 4, Energy: 4, Focus: 4},
			{Date: "2025-09-30", Mood: 1, Energy: 1, Focus: 1},
		},
	}

	got, err := Analytics(in, now)
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}

	if s := got.Streaks["h1"]; s != (model.StreakData{Current: 5, Longest: 5, Total: 5}) {
		t.Errorf("h1 streak = %+v", s)
	}
	if s, ok := got.Streaks["h2"]; !ok || s != (model.StreakData{}) {
		t.Errorf("h2 streak = %+v, present %v", s, ok)
	}
	if got.CompletionRate != 5 {
		t.Errorf("CompletionRate = %d, want 5", got.CompletionRate)
	}
	// 20 days in the window, 2 habits.
	if !approx(got.CompletionRatio, 5.0/40.0) {
		t.Errorf("CompletionRatio = %v, want 0.125", got.CompletionRatio)
	}
	// 5 completions over ceil(19.5) = 20 elapsed days.
	if !approx(got.ConsistencyPercentage, 25) {
		t.Errorf("ConsistencyPercentage = %v, want 25", got.ConsistencyPercentage)
	}
	if got.DaysRemaining != 73 {
		t.Errorf("DaysRemaining = %d, want 73", got.DaysRemaining)
	}

	wantTrend := []model.MoodPoint{{Date: "2025-10-10", Mood: 4}, {Date: "2025-10-18", Mood: 2}}
	if len(got.MoodTrend) != len(wantTrend) {
		t.Fatalf("MoodTrend = %+v, want %+v", got.MoodTrend, wantTrend)
	}
	for i := range wantTrend {
		if got.MoodTrend[i] != wantTrend[i] {
			t.Errorf("MoodTrend[%d] = %+v, want %+v", i, got.MoodTrend[i], wantTrend[i])
		}
	}

	// No habit entries exist on any mood day except 2025-10-18, where h1 was done.
	// (2 * 1 + 4 * 0 + 1 * 0) / 3
	if !approx(got.EnergyCorrelation, 2.0/3.0) {
		t.Errorf("EnergyCorrelation = %v, want %v", got.EnergyCorrelation, 2.0/3.0)
	}
}

func TestAnalyticsConsistencyIsClamped(t *testing.T) {
	now := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	days := []string{"2025-10-01", "2025-10-02", "2025-10-03"}
	in := Input{
		Habits: []*model.Habit{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		History: map[string][]*model.HabitEntry{
			"a": completedOn("a", days...),
			"b": completedOn("b", days...),
			"c": completedOn("c", days...),
		},
	}

	got, err := Analytics(in, now)
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}
	if got.ConsistencyPercentage != 100 {
		t.Errorf("ConsistencyPercentage = %v, want 100", got.ConsistencyPercentage)
	}

	// Before the arc starts nothing has elapsed.
	june := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err = Analytics(in, june)
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}
	if got.ConsistencyPercentage != 0 {
		t.Errorf("ConsistencyPercentage before arc = %v, want 0", got.ConsistencyPercentage)
	}
	if got.CompletionRate != 0 {
		t.Errorf("CompletionRate before arc = %d, want 0", got.CompletionRate)
	}
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		completed, elapsed int
		want               float64
	}{
		{0, 0, 0},
		{10, 0, 0},
		{10, -3, 0},
		{5, 10, 50},
		{30, 10, 100},
	}

	for _, tt := range tests {
		if got := Consistency(tt.completed, tt.elapsed); got != tt.want {
			t.Errorf("Consistency(%d, %d) = %v, want %v", tt.completed, tt.elapsed, got, tt.want)
		}
	}
}
