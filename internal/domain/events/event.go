package events

import (
	"time"

	"github.com/google/uuid"
)

// DashboardEvent notifies listeners that a user's aggregated dashboard data
// went stale. Summaries, streaks and achievements are derived values and are
// recomputed on the next load, never patched in place.
type DashboardEvent struct {
	EventType string      `json:"event_type"`
	UserID    uuid.UUID   `json:"user_id"`
	EntityID  uuid.UUID   `json:"entity_id"`
	Stream    string      `json:"stream,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
}

// Standard dashboard event types
const (
	DashboardEventCacheInvalidate = "cache_invalidate"
	DashboardEventDayRollover     = "day_rollover"
)

// Log stream names carried in DashboardEvent.Stream
const (
	StreamSleep    = "sleep"
	StreamWater    = "water"
	StreamMood     = "mood"
	StreamExercise = "exercise"
	StreamHealth   = "health"
	StreamJournal  = "journal"
)
