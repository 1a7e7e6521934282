package migrations

import (
	"fmt"

	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
	"github.com/vitalogapp/vitalog-backend/internal/domain/user"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/persistence/postgres/connection"
)

// RunMigrations applies the schema for every persisted model. Derived data
// (summaries, streaks, achievements) has no tables; it is recomputed per
// load.
func RunMigrations(db *connection.Database) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to ensure uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&user.User{},
		&logs.SleepLog{},
		&logs.WaterLog{},
		&logs.MoodLog{},
		&logs.ExerciseLog{},
		&logs.HealthLog{},
		&journal.JournalEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
