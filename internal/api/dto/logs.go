package dto

// Log creation payloads. LogDate is the calendar date the entry belongs to
// (YYYY-MM-DD); aggregation buckets key on it, never on creation time.

type CreateSleepLogRequest struct {
	LogDate       string  `json:"log_date" binding:"required"`
	DurationHours float64 `json:"duration_hours"`
	Quality       int     `json:"quality"`
	Notes         string  `json:"notes,omitempty"`
}

type CreateWaterLogRequest struct {
	LogDate  string `json:"log_date" binding:"required"`
	AmountMl int    `json:"amount_ml" binding:"required"`
}

type CreateMoodLogRequest struct {
	LogDate string `json:"log_date" binding:"required"`
	Mood    string `json:"mood" binding:"required"`
	Score   int    `json:"score"`
	Notes   string `json:"notes,omitempty"`
}

type CreateExerciseLogRequest struct {
	LogDate         string `json:"log_date" binding:"required"`
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Intensity       string `json:"intensity,omitempty"`
}

type CreateHealthLogRequest struct {
	LogDate  string  `json:"log_date" binding:"required"`
	WeightKg float64 `json:"weight_kg,omitempty"`
	Calories int     `json:"calories,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// LogListQuery bounds a range listing; both bounds are inclusive calendar
// dates.
type LogListQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
