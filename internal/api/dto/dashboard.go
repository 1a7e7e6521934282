package dto

import (
	"time"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dashboard"
)

// DashboardResponse is the full dashboard payload: one summary per window
// date plus everything derived from the window.
type DashboardResponse struct {
	Window       []string                 `json:"window"`
	Summaries    []dashboard.DailySummary `json:"summaries"`
	Streaks      dashboard.Streaks        `json:"streaks"`
	Achievements []dashboard.Achievement  `json:"achievements"`
	Targets      dashboard.Targets        `json:"targets"`
	Timestamp    time.Time                `json:"timestamp"`
}
