package logs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/domain/events"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/cache"
)

// Service owns the logging UI surface of the record store: create, list and
// delete per stream. The aggregation core never writes through it; one stream
// never mutates another stream's records.
type Service interface {
	CreateSleep(ctx context.Context, entry *SleepLog) error
	CreateWater(ctx context.Context, entry *WaterLog) error
	CreateMood(ctx context.Context, entry *MoodLog) error
	CreateExercise(ctx context.Context, entry *ExerciseLog) error
	CreateHealth(ctx context.Context, entry *HealthLog) error

	ListSleep(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepLog, error)
	ListWater(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]WaterLog, error)
	ListMood(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MoodLog, error)
	ListExercise(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExerciseLog, error)
	ListHealth(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]HealthLog, error)

	Delete(ctx context.Context, stream string, userID, id uuid.UUID) error
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redis:  redis,
		logger: logger,
	}
}

// invalidateDashboard publishes a cache-invalidation event so the next
// dashboard load recomputes summaries from fresh data.
func (s *service) invalidateDashboard(ctx context.Context, userID, entityID uuid.UUID, stream string) {
	event := &events.DashboardEvent{
		EventType: events.DashboardEventCacheInvalidate,
		UserID:    userID,
		EntityID:  entityID,
		Stream:    stream,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish dashboard event",
			zap.Error(err),
			zap.String("stream", stream))
	}
}

func (s *service) CreateSleep(ctx context.Context, entry *SleepLog) error {
	if err := s.repo.CreateSleep(ctx, entry); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, entry.UserID, entry.ID, events.StreamSleep)
	return nil
}

func (s *service) CreateWater(ctx context.Context, entry *WaterLog) error {
	if err := s.repo.CreateWater(ctx, entry); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, entry.UserID, entry.ID, events.StreamWater)
	return nil
}

func (s *service) CreateMood(ctx context.Context, entry *MoodLog) error {
	if err := s.repo.CreateMood(ctx, entry); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, entry.UserID, entry.ID, events.StreamMood)
	return nil
}

func (s *service) CreateExercise(ctx context.Context, entry *ExerciseLog) error {
	if err := s.repo.CreateExercise(ctx, entry); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, entry.UserID, entry.ID, events.StreamExercise)
	return nil
}

func (s *service) CreateHealth(ctx context.Context, entry *HealthLog) error {
	if err := s.repo.CreateHealth(ctx, entry); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, entry.UserID, entry.ID, events.StreamHealth)
	return nil
}

func (s *service) ListSleep(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepLog, error) {
	return s.repo.ListSleepRange(ctx, userID, from, to)
}

func (s *service) ListWater(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]WaterLog, error) {
	return s.repo.ListWaterRange(ctx, userID, from, to)
}

func (s *service) ListMood(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MoodLog, error) {
	return s.repo.ListMoodRange(ctx, userID, from, to)
}

func (s *service) ListExercise(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExerciseLog, error) {
	return s.repo.ListExerciseRange(ctx, userID, from, to)
}

func (s *service) ListHealth(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]HealthLog, error) {
	return s.repo.ListHealthRange(ctx, userID, from, to)
}

func (s *service) Delete(ctx context.Context, stream string, userID, id uuid.UUID) error {
	var err error
	switch stream {
	case events.StreamSleep:
		err = s.repo.DeleteSleep(ctx, userID, id)
	case events.StreamWater:
		err = s.repo.DeleteWater(ctx, userID, id)
	case events.StreamMood:
		err = s.repo.DeleteMood(ctx, userID, id)
	case events.StreamExercise:
		err = s.repo.DeleteExercise(ctx, userID, id)
	case events.StreamHealth:
		err = s.repo.DeleteHealth(ctx, userID, id)
	default:
		return ErrLogNotFound
	}
	if err != nil {
		return err
	}
	s.invalidateDashboard(ctx, userID, id, stream)
	return nil
}
