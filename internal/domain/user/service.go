package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the current-user provider: it exposes the profile and the
// daily targets that the dashboard feeds into achievement evaluation.
type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetTargets(ctx context.Context, id uuid.UUID) (waterMl int, calories int, err error)
	UpdateTargets(ctx context.Context, id uuid.UUID, input UpdateTargetsInput) (*User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, input UpdatePreferencesInput) (*User, error)
}

type service struct {
	repo               Repository
	logger             *zap.Logger
	defaultWaterTarget int
}

func NewService(repo Repository, logger *zap.Logger, defaultWaterTarget int) Service {
	return &service{
		repo:               repo,
		logger:             logger,
		defaultWaterTarget: defaultWaterTarget,
	}
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetTargets returns the user's configured daily targets, substituting the
// configured default when the water target is unset.
func (s *service) GetTargets(ctx context.Context, id uuid.UUID) (int, int, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	waterMl := u.DailyWaterTargetMl
	if waterMl <= 0 {
		waterMl = s.defaultWaterTarget
	}
	return waterMl, u.DailyCalorieTarget, nil
}

func (s *service) UpdateTargets(ctx context.Context, id uuid.UUID, input UpdateTargetsInput) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.DailyWaterTargetMl != nil && u.DailyWaterTargetMl != *input.DailyWaterTargetMl {
		u.DailyWaterTargetMl = *input.DailyWaterTargetMl
		changed = true
	}
	if input.DailyCalorieTarget != nil && u.DailyCalorieTarget != *input.DailyCalorieTarget {
		u.DailyCalorieTarget = *input.DailyCalorieTarget
		changed = true
	}
	if !changed {
		return u, nil
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("User targets updated",
		zap.String("user_id", id.String()),
		zap.Int("water_target_ml", u.DailyWaterTargetMl),
		zap.Int("calorie_target", u.DailyCalorieTarget))
	return u, nil
}

func (s *service) UpdatePreferences(ctx context.Context, id uuid.UUID, input UpdatePreferencesInput) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.Theme != nil && u.Theme != *input.Theme {
		u.Theme = *input.Theme
		changed = true
	}
	if input.Language != nil && u.Language != *input.Language {
		u.Language = *input.Language
		changed = true
	}
	if !changed {
		return u, nil
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
