package logs

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SleepLog is a point-in-time record of one night's sleep. Multiple entries
// on the same log date are allowed; the aggregator keeps the most recently
// created one.
type SleepLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_user_date,priority:1" json:"user_id"`
	LogDate       time.Time `gorm:"type:date;not null;index:idx_sleep_user_date,priority:2" json:"log_date"`
	DurationHours float64   `gorm:"not null;default:0" json:"duration_hours"`
	Quality       int       `gorm:"not null;default:0" json:"quality"` // 1-10 scale
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (SleepLog) TableName() string { return "sleep_logs" }

// WaterLog records one intake event. Water is additive: the aggregator sums
// every entry for a date instead of keeping the latest.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_water_user_date,priority:1" json:"user_id"`
	LogDate   time.Time `gorm:"type:date;not null;index:idx_water_user_date,priority:2" json:"log_date"`
	AmountMl  int       `gorm:"not null;default:0" json:"amount_ml"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (WaterLog) TableName() string { return "water_logs" }

// MoodLog is a mood check-in. The last check-in of a date represents the day.
type MoodLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_user_date,priority:1" json:"user_id"`
	LogDate   time.Time `gorm:"type:date;not null;index:idx_mood_user_date,priority:2" json:"log_date"`
	Mood      string    `gorm:"size:50;not null" json:"mood"`
	Score     int       `gorm:"not null;default:0" json:"score"` // 1-5 scale
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (MoodLog) TableName() string { return "mood_logs" }

// ExerciseLog records one workout. Minutes are additive per date.
type ExerciseLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_exercise_user_date,priority:1" json:"user_id"`
	LogDate         time.Time `gorm:"type:date;not null;index:idx_exercise_user_date,priority:2" json:"log_date"`
	Activity        string    `gorm:"size:100" json:"activity"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Intensity       string    `gorm:"size:20" json:"intensity,omitempty"`
	CreatedAt       time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (ExerciseLog) TableName() string { return "exercise_logs" }

// HealthLog holds general health measurements and nutrition totals that the
// logging UI captures but the dashboard window does not chart.
type HealthLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_health_user_date,priority:1" json:"user_id"`
	LogDate   time.Time `gorm:"type:date;not null;index:idx_health_user_date,priority:2" json:"log_date"`
	WeightKg  float64   `gorm:"default:0" json:"weight_kg,omitempty"`
	Calories  int       `gorm:"default:0" json:"calories,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
}

func (HealthLog) TableName() string { return "health_logs" }

func (l *SleepLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *MoodLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *ExerciseLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *HealthLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
