package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/api/dto"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dashboard"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/events"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/cache"
)

const maxWindowDays = 31

type DashboardHandler struct {
	dashboardService dashboard.Service
	redisClient      *cache.RedisClient
	logger           *zap.Logger
	windowDays       int
	cacheTTL         time.Duration
}

func NewDashboardHandler(
	dashboardService dashboard.Service,
	redisClient *cache.RedisClient,
	logger *zap.Logger,
	windowDays int,
	cacheTTL time.Duration,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		redisClient:      redisClient,
		logger:           logger,
		windowDays:       windowDays,
		cacheTTL:         cacheTTL,
	}
}

// GetDashboard returns the aggregated window: daily summaries, streaks and
// achievements. The response is cached per user and window length; log
// writes invalidate it through dashboard events.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	days := h.windowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxWindowDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("days must be between 1 and %d", maxWindowDays)})
			return
		}
		days = parsed
	}

	// The handler owns "today"; from here down the pipeline is fed an
	// explicit window and stays deterministic.
	today := dates.Today(time.UTC)
	window := dates.Window(today, days)

	cacheKey := fmt.Sprintf("dashboard:%s:%d:%s", today, days, userID)
	if cached, err := h.redisClient.Get(c.Request.Context(), cacheKey); err == nil && cached != "" {
		var response dto.DashboardResponse
		if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
			c.JSON(http.StatusOK, gin.H{"data": response})
			return
		}
	}

	start := time.Now()
	overview, err := h.dashboardService.GetOverview(c.Request.Context(), userID, window)
	if err != nil {
		// The core never runs on partial data; surface the failure and let
		// the client retry.
		h.logger.Error("Failed to build dashboard overview",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	middleware.ObserveDashboardCompute(time.Since(start))

	windowKeys := make([]string, len(window))
	for i, d := range window {
		windowKeys[i] = d.String()
	}

	response := dto.DashboardResponse{
		Window:       windowKeys,
		Summaries:    overview.Summaries,
		Streaks:      overview.Streaks,
		Achievements: overview.Achievements,
		Targets:      overview.Targets,
		Timestamp:    time.Now().UTC(),
	}

	if data, err := json.Marshal(response); err == nil {
		if err := h.redisClient.Set(c.Request.Context(), cacheKey, string(data), h.cacheTTL); err != nil {
			h.logger.Error("Failed to cache dashboard response", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": response})
}

// StartDashboardEventListener invalidates cached dashboards when log writes
// or day rollovers publish events.
func (h *DashboardHandler) StartDashboardEventListener(ctx context.Context) {
	go func() {
		err := h.redisClient.SubscribeToDashboardEvents(ctx, func(event *events.DashboardEvent) error {
			h.logger.Info("Received dashboard event",
				zap.String("event_type", event.EventType),
				zap.String("user_id", event.UserID.String()),
				zap.String("stream", event.Stream))

			pattern := fmt.Sprintf("dashboard:*:%s", event.UserID.String())
			if event.EventType == events.DashboardEventDayRollover {
				pattern = "dashboard:*"
			}
			if err := h.redisClient.ClearByPattern(ctx, pattern); err != nil {
				h.logger.Error("Failed to invalidate dashboard cache",
					zap.Error(err),
					zap.String("pattern", pattern))
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			h.logger.Error("Dashboard event listener error", zap.Error(err))
		}
	}()
}
