package logs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/persistence/postgres/connection"
)

var (
	ErrLogNotFound = errors.New("log entry not found")
)

const defaultListLimit = 500

// Repository is the typed record store the aggregation core reads from.
// Range queries return rows ordered by log_date then created_at ascending so
// "last one wins" selection downstream is deterministic.
type Repository interface {
	CreateSleep(ctx context.Context, entry *SleepLog) error
	ListSleepRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepLog, error)
	DeleteSleep(ctx context.Context, userID, id uuid.UUID) error

	CreateWater(ctx context.Context, entry *WaterLog) error
	ListWaterRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]WaterLog, error)
	DeleteWater(ctx context.Context, userID, id uuid.UUID) error

	CreateMood(ctx context.Context, entry *MoodLog) error
	ListMoodRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MoodLog, error)
	DeleteMood(ctx context.Context, userID, id uuid.UUID) error

	CreateExercise(ctx context.Context, entry *ExerciseLog) error
	ListExerciseRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExerciseLog, error)
	DeleteExercise(ctx context.Context, userID, id uuid.UUID) error

	CreateHealth(ctx context.Context, entry *HealthLog) error
	ListHealthRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]HealthLog, error)
	DeleteHealth(ctx context.Context, userID, id uuid.UUID) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) rangeQuery(ctx context.Context, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, from, to).
		Order("log_date ASC, created_at ASC")
}

func (r *repository) deleteOwned(ctx context.Context, model interface{}, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (r *repository) CreateSleep(ctx context.Context, entry *SleepLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListSleepRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SleepLog, error) {
	var entries []SleepLog
	err := r.rangeQuery(ctx, userID, from, to).Limit(defaultListLimit).Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteSleep(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, &SleepLog{}, userID, id)
}

func (r *repository) CreateWater(ctx context.Context, entry *WaterLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListWaterRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]WaterLog, error) {
	var entries []WaterLog
	err := r.rangeQuery(ctx, userID, from, to).Limit(defaultListLimit).Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteWater(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, &WaterLog{}, userID, id)
}

func (r *repository) CreateMood(ctx context.Context, entry *MoodLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListMoodRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]MoodLog, error) {
	var entries []MoodLog
	err := r.rangeQuery(ctx, userID, from, to).Limit(defaultListLimit).Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteMood(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, &MoodLog{}, userID, id)
}

func (r *repository) CreateExercise(ctx context.Context, entry *ExerciseLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListExerciseRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExerciseLog, error) {
	var entries []ExerciseLog
	err := r.rangeQuery(ctx, userID, from, to).Limit(defaultListLimit).Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteExercise(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, &ExerciseLog{}, userID, id)
}

func (r *repository) CreateHealth(ctx context.Context, entry *HealthLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListHealthRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]HealthLog, error) {
	var entries []HealthLog
	err := r.rangeQuery(ctx, userID, from, to).Limit(defaultListLimit).Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteHealth(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, &HealthLog{}, userID, id)
}
