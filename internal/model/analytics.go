package model

type StreakData struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Total   int `json:"total"`
}

type MoodPoint struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

type AnalyticsData struct {
	Streaks map[string]StreakData `json:"streaks"`
	// CompletionRate is the raw number of completed entries inside the arc so far.
	CompletionRate int `json:"completionRate"`
	// CompletionRatio is CompletionRate over every possible (habit, day) slot.
	CompletionRatio       float64     `json:"completionRatio"`
	MoodTrend             []MoodPoint `json:"moodTrend"`
	EnergyCorrelation     float64     `json:"energyCorrelation"`
	DaysRemaining         int         `json:"daysRemaining"`
	ConsistencyPercentage float64     `json:"consistencyPercentage"`
}

type DailyProgress struct {
	Date                 string  `json:"date"`
	HabitsCompleted      int     `json:"habitsCompleted"`
	TotalHabits          int     `json:"totalHabits"`
	HasMoodEntry         bool    `json:"hasMoodEntry"`
	HasJournalEntry      bool    `json:"hasJournalEntry"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

type AppStats struct {
	CompletedToday   int     `json:"completedToday"`
	TotalHabits      int     `json:"totalHabits"`
	TodayProgress    float64 `json:"todayProgress"`
	DaysUntilNewYear int     `json:"daysUntilNewYear"`
	CurrentStreak    int     `json:"currentStreak"`
	CurrentDay       int     `json:"currentDay"`
	EarnedBadges     int     `json:"earnedBadges"`
	TotalBadges      int     `json:"totalBadges"`
	IsToday          bool    `json:"isToday"`
}
