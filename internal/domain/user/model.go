package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the current-user record. Daily targets feed achievement
// evaluation; theme and language are persisted preferences the client
// initializes from, updates through an explicit setter, and persists on
// change rather than keeping as ambient globals.
type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName           string    `gorm:"size:255" json:"full_name"`
	DailyWaterTargetMl int       `gorm:"default:0" json:"daily_water_target_ml"`
	DailyCalorieTarget int       `gorm:"default:0" json:"daily_calorie_target"`
	Theme              string    `gorm:"size:20;default:light" json:"theme"`
	Language           string    `gorm:"size:10;default:en" json:"language"`
	CreatedAt          time.Time `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UpdateTargetsInput carries the settable daily goal fields.
type UpdateTargetsInput struct {
	DailyWaterTargetMl *int `json:"daily_water_target_ml,omitempty"`
	DailyCalorieTarget *int `json:"daily_calorie_target,omitempty"`
}

// UpdatePreferencesInput carries the settable display preferences.
type UpdatePreferencesInput struct {
	Theme    *string `json:"theme,omitempty"`
	Language *string `json:"language,omitempty"`
}
