package journal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/persistence/postgres/connection"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
)

// History fetches are capped; stats operate on the full history up to this
// limit.
const historyLimit = 1000

type Repository interface {
	Create(ctx context.Context, entry *JournalEntry) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*JournalEntry, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]JournalEntry, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateInsights(ctx context.Context, id uuid.UUID, insights datatypes.JSON) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByID(ctx context.Context, userID, id uuid.UUID) (*JournalEntry, error) {
	var entry JournalEntry
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC, created_at DESC").
		Limit(historyLimit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&JournalEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) UpdateInsights(ctx context.Context, id uuid.UUID, insights datatypes.JSON) error {
	result := r.db.WithContext(ctx).
		Model(&JournalEntry{}).
		Where("id = ?", id).
		Update("ai_insights", insights)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&JournalEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
