package dashboard

import (
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
)

// Streams holds the fully-resolved raw log slices the aggregator consumes.
// Empty slices are the valid "no data" representation; callers must never
// pass partially-fetched data.
type Streams struct {
	Sleep    []logs.SleepLog
	Water    []logs.WaterLog
	Mood     []logs.MoodLog
	Exercise []logs.ExerciseLog
}

// DailySummary is the derived per-date bucket consumed by charts and streak
// computation. It is recomputed on every load and never persisted. Exactly
// one summary exists per window date, zero-filled when no logs match.
type DailySummary struct {
	DateKey         string  `json:"date_key"`
	Label           string  `json:"label"`
	SleepHours      float64 `json:"sleep_hours"`
	SleepQuality    int     `json:"sleep_quality"`
	WaterMl         int     `json:"water_ml"`
	Mood            *string `json:"mood"`
	MoodScore       int     `json:"mood_score"`
	ExerciseMinutes int     `json:"exercise_minutes"`

	date dates.CalendarDate
}

// Date returns the summary's calendar date.
func (s DailySummary) Date() dates.CalendarDate {
	return s.date
}

// StreakState is the derived streak pair for one goal series.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// DaySignal is one element of a goal series: did the user meet the goal on
// that date. A date absent from the series is "not yet decided", which is
// distinct from MetGoal == false.
type DaySignal struct {
	Date    dates.CalendarDate
	MetGoal bool
}

// Achievement is a live predicate over the current window's aggregates, not
// a persisted award. ThresholdMet is always true on emitted values; rules
// that miss their threshold emit nothing.
type Achievement struct {
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThresholdMet bool   `json:"threshold_met"`
}

// Targets carries the user-configured goal inputs for achievement rules.
type Targets struct {
	WaterMl int `json:"water_ml"`
}

// Streaks groups the per-goal streak states shown on the dashboard.
type Streaks struct {
	Sleep    StreakState `json:"sleep"`
	Water    StreakState `json:"water"`
	Exercise StreakState `json:"exercise"`
}

// Overview is the full dashboard payload: window summaries plus everything
// derived from them.
type Overview struct {
	Summaries    []DailySummary `json:"summaries"`
	Streaks      Streaks        `json:"streaks"`
	Achievements []Achievement  `json:"achievements"`
	Targets      Targets        `json:"targets"`
}
