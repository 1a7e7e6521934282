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
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
)

type LogsHandler struct {
	logsService logs.Service
	logger      *zap.Logger
}

func NewLogsHandler(logsService logs.Service, logger *zap.Logger) *LogsHandler {
	return &LogsHandler{
		logsService: logsService,
		logger:      logger,
	}
}

// parseRange resolves the from/to query bounds, defaulting to the trailing
// 30 days.
func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	var query dto.LogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false
	}

	today := dates.Today(time.UTC)
	from := today.AddDays(-29)
	to := today

	if query.From != "" {
		d, err := dates.Parse(query.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = d
	}
	if query.To != "" {
		d, err := dates.Parse(query.To)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = d
	}
	if from > to {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return time.Time{}, time.Time{}, false
	}
	return from.Time(), to.Time(), true
}

func parseLogDate(c *gin.Context, raw string) (time.Time, bool) {
	d, err := dates.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "log_date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d.Time(), true
}

func (h *LogsHandler) CreateSleepLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateSleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, ok := parseLogDate(c, req.LogDate)
	if !ok {
		return
	}

	entry := &logs.SleepLog{
		UserID:        userID,
		LogDate:       logDate,
		DurationHours: req.DurationHours,
		Quality:       req.Quality,
		Notes:         req.Notes,
	}
	if err := h.logsService.CreateSleep(c.Request.Context(), entry); err != nil {
		h.logger.Error("Failed to create sleep log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sleep log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *LogsHandler) CreateWaterLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateWaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, ok := parseLogDate(c, req.LogDate)
	if !ok {
		return
	}

	entry := &logs.WaterLog{
		UserID:   userID,
		LogDate:  logDate,
		AmountMl: req.AmountMl,
	}
	if err := h.logsService.CreateWater(c.Request.Context(), entry); err != nil {
		h.logger.Error("Failed to create water log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create water log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *LogsHandler) CreateMoodLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, ok := parseLogDate(c, req.LogDate)
	if !ok {
		return
	}

	entry := &logs.MoodLog{
		UserID:  userID,
		LogDate: logDate,
		Mood:    req.Mood,
		Score:   req.Score,
		Notes:   req.Notes,
	}
	if err := h.logsService.CreateMood(c.Request.Context(), entry); err != nil {
		h.logger.Error("Failed to create mood log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create mood log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *LogsHandler) CreateExerciseLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, ok := parseLogDate(c, req.LogDate)
	if !ok {
		return
	}

	entry := &logs.ExerciseLog{
		UserID:          userID,
		LogDate:         logDate,
		Activity:        req.Activity,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
	}
	if err := h.logsService.CreateExercise(c.Request.Context(), entry); err != nil {
		h.logger.Error("Failed to create exercise log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create exercise log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *LogsHandler) CreateHealthLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, ok := parseLogDate(c, req.LogDate)
	if !ok {
		return
	}

	entry := &logs.HealthLog{
		UserID:   userID,
		LogDate:  logDate,
		WeightKg: req.WeightKg,
		Calories: req.Calories,
		Notes:    req.Notes,
	}
	if err := h.logsService.CreateHealth(c.Request.Context(), entry); err != nil {
		h.logger.Error("Failed to create health log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create health log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *LogsHandler) ListSleepLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	entries, err := h.logsService.ListSleep(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to list sleep logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sleep logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *LogsHandler) ListWaterLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	entries, err := h.logsService.ListWater(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to list water logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list water logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *LogsHandler) ListMoodLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	entries, err := h.logsService.ListMood(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to list mood logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list mood logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *LogsHandler) ListExerciseLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	entries, err := h.logsService.ListExercise(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to list exercise logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercise logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *LogsHandler) ListHealthLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	entries, err := h.logsService.ListHealth(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logger.Error("Failed to list health logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list health logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// DeleteLog removes one entry from the stream named in the route.
func (h *LogsHandler) DeleteLog(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	stream := c.Param("stream")
	if err := h.logsService.Delete(c.Request.Context(), stream, userID, id); err != nil {
		if errors.Is(err, logs.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log entry not found"})
			return
		}
		h.logger.Error("Failed to delete log entry",
			zap.Error(err),
			zap.String("stream", stream))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}
