package analytics

import (
	"time"

	"github.com/samber/lo"
	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
)

// StatsInput is the already-loaded state the dashboard numbers are built from.
type StatsInput struct {
	Habits []*model.Habit
	// Entries are the habit entries of SelectedDate.
	Entries      []*model.HabitEntry
	Analytics    *model.AnalyticsData
	Badges       []model.BadgeStatus
	SelectedDate string
}

// AppStatsFor combines loaded data into dashboard numbers as of now.
func AppStatsFor(in StatsInput, now time.Time) model.AppStats {
	completed := lo.CountBy(in.Entries, func(e *model.HabitEntry) bool { return e.Completed })

	currentStreak := 0
	if in.Analytics != nil {
		for _, s := range in.Analytics.Streaks {
			currentStreak = max(currentStreak, s.Current)
		}
	}

	return model.AppStats{
		CompletedToday:   completed,
		TotalHabits:      len(in.Habits),
		TodayProgress:    percent(completed, len(in.Habits)),
		DaysUntilNewYear: dates.DaysUntil(now, dates.NextNewYear(now)),
		CurrentStreak:    currentStreak,
		CurrentDay:       dates.ArcDay(now),
		EarnedBadges:     lo.CountBy(in.Badges, func(b model.BadgeStatus) bool { return b.Earned }),
		TotalBadges:      len(in.Badges),
		IsToday:          dates.IsToday(in.SelectedDate, now),
	}
}

// DailyProgressFor summarizes one calendar day. mood and journal are nil when
// nothing was logged that day.
func DailyProgressFor(date string, habits []*model.Habit, entries []*model.HabitEntry, mood *model.MoodEntry, journal *model.JournalEntry) model.DailyProgress {
	completed := lo.CountBy(entries, func(e *model.HabitEntry) bool { return e.Completed })

	return model.DailyProgress{
		Date:                 date,
		HabitsCompleted:      completed,
		TotalHabits:          len(habits),
		HasMoodEntry:         mood != nil,
		HasJournalEntry:      journal != nil,
		CompletionPercentage: percent(completed, len(habits)),
	}
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
