package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/domain/events"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/cache"
	"github.com/vitalogapp/vitalog-backend/pkg/logger"
)

// Scheduler handles the day rollover. Summaries, streaks and achievements
// are anchored at "today", so cached dashboards from yesterday are wrong the
// moment the date changes; at midnight the scheduler drops them and
// publishes a rollover event.
type Scheduler struct {
	redis  *cache.RedisClient
	logger *logger.Logger
}

func NewScheduler(redis *cache.RedisClient, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		redis:  redis,
		logger: logger,
	}
}

// Start runs the rollover loop until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	timeUntilMidnight := nextMidnight.Sub(now)

	s.logger.Info("Day rollover scheduler initialized",
		zap.Time("current_time", now),
		zap.Time("next_run", nextMidnight),
		zap.Duration("time_until_next_run", timeUntilMidnight),
	)

	go func() {
		timer := time.NewTimer(timeUntilMidnight)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				s.runRollover(ctx)
				timer.Reset(24 * time.Hour)
			}
		}
	}()
}

func (s *Scheduler) runRollover(ctx context.Context) {
	if err := s.redis.ClearByPattern(ctx, "dashboard:*"); err != nil {
		s.logger.Error("Failed to clear dashboard caches on rollover", zap.Error(err))
	}

	event := &events.DashboardEvent{
		EventType: events.DashboardEventDayRollover,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish day rollover event", zap.Error(err))
		return
	}

	s.logger.Info("Day rollover complete")
}
