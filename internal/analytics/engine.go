package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
)

// Completion is the outcome of counting completed entries in a date window.
type Completion struct {
	Completed int
	Possible  int
	Days      int
}

// Ratio is Completed over Possible, or 0 when nothing was possible.
func (c Completion) Ratio() float64 {
	if c.Possible <= 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Possible)
}

// CompletionRate counts completed entries dated within [start, end]. Possible
// is habitCount times the number of days in the window.
func CompletionRate(entries []*model.HabitEntry, habitCount int, start, end string) (Completion, error) {
	if habitCount == 0 || end < start {
		return Completion{}, nil
	}

	days, err := dates.DaysBetween(start, end)
	if err != nil {
		return Completion{}, err
	}
	days++

	completed := lo.CountBy(entries, func(e *model.HabitEntry) bool {
		return e.Completed && e.Date >= start && e.Date <= end
	})

	return Completion{
		Completed: completed,
		Possible:  habitCount * days,
		Days:      days,
	}, nil
}

// MoodCorrelation weighs each logged day's average of mood, energy and focus by
// that day's completion ratio (completed over recorded entries) and returns the
// mean across mood entries.
func MoodCorrelation(moods []*model.MoodEntry, entries []*model.HabitEntry, habitCount int) float64 {
	if len(moods) == 0 || habitCount == 0 {
		return 0
	}

	byDate := lo.GroupBy(entries, func(e *model.HabitEntry) string { return e.Date })

	var total float64
	for _, m := range moods {
		day := byDate[m.Date]
		ratio := 0.0
		if len(day) > 0 {
			done := lo.CountBy(day, func(e *model.HabitEntry) bool { return e.Completed })
			ratio = float64(done) / float64(len(day))
		}
		total += m.Average() * ratio
	}

	return total / float64(len(moods))
}

// Input is everything Analytics needs for one user.
type Input struct {
	Habits []*model.Habit
	// History holds the full entry history of each habit, keyed by habit id.
	History map[string][]*model.HabitEntry
	// Moods holds all of the user's mood entries.
	Moods []*model.MoodEntry
}

// Analytics aggregates streaks and arc statistics as of now. The arc runs from
// October 1 to the next January 1.
func Analytics(in Input, now time.Time) (*model.AnalyticsData, error) {
	streaks := make(map[string]model.StreakData, len(in.Habits))
	var entries []*model.HabitEntry
	for _, h := range in.Habits {
		history := in.History[h.ID]
		streaks[h.ID] = StreakForHabit(history, now)
		entries = append(entries, history...)
	}

	arcStart := dates.ArcStart(now)
	start := dates.Format(arcStart)
	today := dates.Format(now)

	completion, err := CompletionRate(entries, len(in.Habits), start, today)
	if err != nil {
		return nil, err
	}

	inArc := lo.Filter(in.Moods, func(m *model.MoodEntry, _ int) bool {
		return m.Date >= start && m.Date <= today
	})
	slices.SortFunc(inArc, func(a, b *model.MoodEntry) int { return strings.Compare(a.Date, b.Date) })
	trend := lo.Map(inArc, func(m *model.MoodEntry, _ int) model.MoodPoint {
		return model.MoodPoint{Date: m.Date, Mood: m.Mood}
	})

	return &model.AnalyticsData{
		Streaks:               streaks,
		CompletionRate:        completion.Completed,
		CompletionRatio:       completion.Ratio(),
		MoodTrend:             trend,
		EnergyCorrelation:     MoodCorrelation(in.Moods, entries, len(in.Habits)),
		DaysRemaining:         dates.DaysUntil(now, dates.NextNewYear(now)),
		ConsistencyPercentage: Consistency(completion.Completed, dates.CeilDays(now.Sub(arcStart))),
	}, nil
}

// Consistency is 100 * completed / elapsedDays clamped to [0, 100]. It is 0
// before the arc has started.
func Consistency(completed, elapsedDays int) float64 {
	if elapsedDays <= 0 {
		return 0
	}
	pct := float64(completed) / float64(elapsedDays) * 100
	return min(100, max(0, pct))
}
