package dto

import (
	"time"

	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
)

// CreateJournalEntryRequest is the payload for creating a journal entry.
// EntryDate defaults to today when omitted.
type CreateJournalEntryRequest struct {
	EntryDate string `json:"entry_date,omitempty"` // YYYY-MM-DD
	Title     string `json:"title"`
	Content   string `json:"content" binding:"required"`
	MoodTag   string `json:"mood_tag,omitempty"`
}

type JournalEntryResponse struct {
	Entry journal.JournalEntry `json:"entry"`
}

type JournalListResponse struct {
	Entries []journal.JournalEntry `json:"entries"`
	Total   int                    `json:"total"`
}

type JournalStatsResponse struct {
	Stats     journal.JournalStats `json:"stats"`
	WeekStart string               `json:"week_start"`
	Timestamp time.Time            `json:"timestamp"`
}
