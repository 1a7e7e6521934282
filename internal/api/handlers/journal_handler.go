package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/api/dto"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
)

type JournalHandler struct {
	journalService journal.Service
	logger         *zap.Logger
	weekStart      dates.WeekStart
	streakGrace    bool
}

func NewJournalHandler(journalService journal.Service, logger *zap.Logger, weekStart dates.WeekStart, streakGrace bool) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		logger:         logger,
		weekStart:      weekStart,
		streakGrace:    streakGrace,
	}
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := journal.CreateEntryInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		MoodTag: req.MoodTag,
	}
	if req.EntryDate != "" {
		d, err := dates.Parse(req.EntryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entry_date must be YYYY-MM-DD"})
			return
		}
		input.EntryDate = d.Time()
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create journal entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": dto.JournalEntryResponse{Entry: *entry}})
}

func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list journal entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.JournalListResponse{Entries: entries, Total: len(entries)}})
}

func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, journal.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		h.logger.Error("Failed to get journal entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.JournalEntryResponse{Entry: *entry}})
}

func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, journal.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		h.logger.Error("Failed to delete journal entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// GetStats returns the journal statistics block. week_start overrides the
// configured locale convention per request.
func (h *JournalHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	weekStart := h.weekStart
	if raw := c.Query("week_start"); raw != "" {
		weekStart = dates.ParseWeekStart(raw)
	}

	today := dates.Today(time.UTC)
	stats, err := h.journalService.GetStats(c.Request.Context(), userID, today, journal.StatsOptions{
		WeekStart:   weekStart,
		GracePeriod: h.streakGrace,
	})
	if err != nil {
		h.logger.Error("Failed to compute journal stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.JournalStatsResponse{
		Stats:     *stats,
		WeekStart: weekStart.String(),
		Timestamp: time.Now().UTC(),
	}})
}
