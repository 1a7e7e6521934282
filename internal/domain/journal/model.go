package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vitalogapp/vitalog-backend/internal/ai"
)

// JournalEntry is one dated journal record. AIInsights holds the structured
// JSON the insight service returned, or null when generation was skipped or
// failed; entries are valid without it.
type JournalEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_journal_user_date,priority:1" json:"user_id"`
	EntryDate  time.Time      `gorm:"type:date;not null;index:idx_journal_user_date,priority:2" json:"entry_date"`
	Title      string         `gorm:"size:255" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	MoodTag    string         `gorm:"size:50" json:"mood_tag,omitempty"`
	AIInsights datatypes.JSON `gorm:"type:jsonb" json:"ai_insights,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:current_timestamp;autoUpdateTime" json:"updated_at"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

func (e *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Insights decodes the stored AI payload. Entries without a payload, or with
// one that fails to decode, return nil.
func (e *JournalEntry) Insights() *ai.JournalInsights {
	if len(e.AIInsights) == 0 {
		return nil
	}
	var insights ai.JournalInsights
	if err := json.Unmarshal(e.AIInsights, &insights); err != nil {
		return nil
	}
	return &insights
}

// CreateEntryInput is the payload for creating a journal entry
type CreateEntryInput struct {
	UserID    uuid.UUID `json:"user_id"`
	EntryDate time.Time `json:"entry_date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	MoodTag   string    `json:"mood_tag"`
}

// JournalStats is the derived statistics block for the Mind view, computed
// over the full entry history up to the fetch limit and never persisted.
type JournalStats struct {
	TotalEntries     int     `json:"total_entries"`
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	AverageMoodScore float64 `json:"average_mood_score"`
	WeeklyCount      int     `json:"weekly_count"`
}
