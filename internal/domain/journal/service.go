package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/vitalogapp/vitalog-backend/internal/ai"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/events"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/cache"
)

type Service interface {
	CreateEntry(ctx context.Context, input CreateEntryInput) (*JournalEntry, error)
	GetEntry(ctx context.Context, userID, id uuid.UUID) (*JournalEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID, today dates.CalendarDate, opts StatsOptions) (*JournalStats, error)
}

type service struct {
	repo     Repository
	aiClient *ai.Client
	redis    *cache.RedisClient
	logger   *zap.Logger
}

// NewService wires the journal service. aiClient may be nil when insight
// generation is disabled; entries then save without insights.
func NewService(repo Repository, aiClient *ai.Client, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		aiClient: aiClient,
		redis:    redis,
		logger:   logger,
	}
}

func (s *service) CreateEntry(ctx context.Context, input CreateEntryInput) (*JournalEntry, error) {
	entry := &JournalEntry{
		ID:        uuid.New(),
		UserID:    input.UserID,
		EntryDate: input.EntryDate,
		Title:     input.Title,
		Content:   input.Content,
		MoodTag:   input.MoodTag,
	}
	if entry.EntryDate.IsZero() {
		entry.EntryDate = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// Insight generation is best-effort; the entry is already durable.
	if s.aiClient != nil {
		s.attachInsights(ctx, entry)
	}

	s.invalidateDashboard(ctx, entry.UserID, entry.ID, "entry_created")
	return entry, nil
}

func (s *service) attachInsights(ctx context.Context, entry *JournalEntry) {
	insights, err := s.aiClient.GenerateJournalInsights(ctx, entry.Content)
	if err != nil {
		s.logger.Warn("Journal insight generation failed",
			zap.Error(err),
			zap.String("entry_id", entry.ID.String()))
		return
	}

	payload, err := json.Marshal(insights)
	if err != nil {
		s.logger.Error("Failed to marshal journal insights", zap.Error(err))
		return
	}

	if err := s.repo.UpdateInsights(ctx, entry.ID, datatypes.JSON(payload)); err != nil {
		s.logger.Error("Failed to store journal insights",
			zap.Error(err),
			zap.String("entry_id", entry.ID.String()))
		return
	}
	entry.AIInsights = datatypes.JSON(payload)
}

func (s *service) GetEntry(ctx context.Context, userID, id uuid.UUID) (*JournalEntry, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *service) ListEntries(ctx context.Context, userID uuid.UUID) ([]JournalEntry, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

func (s *service) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, userID, id, "entry_deleted")
	return nil
}

// GetStats fetches the entry history and runs the stats engine over it.
func (s *service) GetStats(ctx context.Context, userID uuid.UUID, today dates.CalendarDate, opts StatsOptions) (*JournalStats, error) {
	entries, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(entries, today, opts)
	return &stats, nil
}

func (s *service) invalidateDashboard(ctx context.Context, userID, entityID uuid.UUID, action string) {
	event := &events.DashboardEvent{
		EventType: events.DashboardEventCacheInvalidate,
		UserID:    userID,
		EntityID:  entityID,
		Stream:    events.StreamJournal,
		Timestamp: time.Now().UTC(),
		Details:   map[string]interface{}{"action": action},
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish dashboard event", zap.Error(err))
	}
}
