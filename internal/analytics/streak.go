// Package analytics derives streaks, completion and mood statistics from a
// user's already-loaded records. Every function is pure: the reference time
// is a parameter and nothing touches the store.
package analytics

import (
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/model"
)

// maxStreakWalk bounds the backward scan for the current streak.
const maxStreakWalk = 90

// StreakForHabit computes current, longest and total completions from the full
// entry history of one habit.
//
// The current streak counts back from today. A missing entry for today does not
// end the streak, since the day is not over yet; a missing entry for any earlier
// day does.
func StreakForHabit(history []*model.HabitEntry, now time.Time) model.StreakData {
	completed := lo.Filter(history, func(e *model.HabitEntry, _ int) bool {
		return e.Completed && dates.Valid(e.Date)
	})
	if len(completed) == 0 {
		return model.StreakData{}
	}

	done := make(map[string]struct{}, len(completed))
	for _, e := range completed {
		done[e.Date] = struct{}{}
	}

	today := dates.Format(now)
	current := 0
	day := now.UTC()
	for range maxStreakWalk {
		date := dates.Format(day)
		if _, ok := done[date]; ok {
			if date <= today {
				current++
			}
		} else if date < today {
			break
		}
		day = day.AddDate(0, 0, -1)
	}

	days := lo.Keys(done)
	slices.Sort(days)
	slices.Reverse(days)

	// Any completion is a run of at least one day.
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		gap, err := dates.DaysBetween(days[i], days[i-1])
		if err == nil && gap == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}

	return model.StreakData{
		Current: current,
		Longest: max(longest, current),
		Total:   len(completed),
	}
}
