package dto

import (
	"github.com/vitalogapp/vitalog-backend/internal/domain/user"
)

type UserResponse struct {
	User user.User `json:"user"`
}

type UpdateTargetsRequest struct {
	DailyWaterTargetMl *int `json:"daily_water_target_ml,omitempty"`
	DailyCalorieTarget *int `json:"daily_calorie_target,omitempty"`
}

type UpdatePreferencesRequest struct {
	Theme    *string `json:"theme,omitempty"`
	Language *string `json:"language,omitempty"`
}
