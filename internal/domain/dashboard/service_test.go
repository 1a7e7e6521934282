package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
	"github.com/vitalogapp/vitalog-backend/internal/domain/user"
)

type fakeLogsRepo struct {
	sleep    []logs.SleepLog
	water    []logs.WaterLog
	mood     []logs.MoodLog
	exercise []logs.ExerciseLog
	health   []logs.HealthLog

	sleepErr error
	waterErr error
}

func (f *fakeLogsRepo) CreateSleep(ctx context.Context, entry *logs.SleepLog) error { return nil }
func (f *fakeLogsRepo) ListSleepRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]logs.SleepLog, error) {
	return f.sleep, f.sleepErr
}
func (f *fakeLogsRepo) DeleteSleep(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeLogsRepo) CreateWater(ctx context.Context, entry *logs.WaterLog) error { return nil }
func (f *fakeLogsRepo) ListWaterRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]logs.WaterLog, error) {
	return f.water, f.waterErr
}
func (f *fakeLogsRepo) DeleteWater(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeLogsRepo) CreateMood(ctx context.Context, entry *logs.MoodLog) error { return nil }
func (f *fakeLogsRepo) ListMoodRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]logs.MoodLog, error) {
	return f.mood, nil
}
func (f *fakeLogsRepo) DeleteMood(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeLogsRepo) CreateExercise(ctx context.Context, entry *logs.ExerciseLog) error { return nil }
func (f *fakeLogsRepo) ListExerciseRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]logs.ExerciseLog, error) {
	return f.exercise, nil
}
func (f *fakeLogsRepo) DeleteExercise(ctx context.Context, userID, id uuid.UUID) error { return nil }

func (f *fakeLogsRepo) CreateHealth(ctx context.Context, entry *logs.HealthLog) error { return nil }
func (f *fakeLogsRepo) ListHealthRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]logs.HealthLog, error) {
	return f.health, nil
}
func (f *fakeLogsRepo) DeleteHealth(ctx context.Context, userID, id uuid.UUID) error { return nil }

type fakeJournalRepo struct {
	count    int64
	countErr error
}

func (f *fakeJournalRepo) Create(ctx context.Context, entry *journal.JournalEntry) error { return nil }
func (f *fakeJournalRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*journal.JournalEntry, error) {
	return nil, journal.ErrEntryNotFound
}
func (f *fakeJournalRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]journal.JournalEntry, error) {
	return nil, nil
}
func (f *fakeJournalRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return f.count, f.countErr
}
func (f *fakeJournalRepo) UpdateInsights(ctx context.Context, id uuid.UUID, insights datatypes.JSON) error {
	return nil
}
func (f *fakeJournalRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

type fakeUserService struct {
	waterMl    int
	targetsErr error
}

func (f *fakeUserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserService) GetTargets(ctx context.Context, id uuid.UUID) (int, int, error) {
	return f.waterMl, 0, f.targetsErr
}
func (f *fakeUserService) UpdateTargets(ctx context.Context, id uuid.UUID, input user.UpdateTargetsInput) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserService) UpdatePreferences(ctx context.Context, id uuid.UUID, input user.UpdatePreferencesInput) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func newTestService(logsRepo *fakeLogsRepo, journalRepo *fakeJournalRepo, users *fakeUserService) Service {
	return NewService(logsRepo, journalRepo, users, zap.NewNop(), Options{
		StreakGrace:        true,
		DefaultWaterTarget: 2000,
	})
}

func TestGetOverviewAssemblesPipeline(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-07"), 7)
	logsRepo := &fakeLogsRepo{
		sleep: []logs.SleepLog{
			{LogDate: day("2024-03-06"), DurationHours: 7.5},
			{LogDate: day("2024-03-07"), DurationHours: 8},
		},
		water: []logs.WaterLog{
			{LogDate: day("2024-03-07"), AmountMl: 1500},
			{LogDate: day("2024-03-07"), AmountMl: 700},
		},
	}
	svc := newTestService(logsRepo, &fakeJournalRepo{count: 10}, &fakeUserService{waterMl: 2000})

	overview, err := svc.GetOverview(context.Background(), uuid.New(), window)

	require.NoError(t, err)
	require.Len(t, overview.Summaries, 7)
	assert.Equal(t, 2200, overview.Summaries[6].WaterMl)
	assert.Equal(t, 2, overview.Streaks.Sleep.Current)
	assert.Equal(t, 1, overview.Streaks.Water.Current)
	assert.Equal(t, 2000, overview.Targets.WaterMl)

	assert.Equal(t, []Achievement{{
		Kind:         AchievementJournalingVolume,
		Title:        "Reflective Mind",
		Description:  "10 journal entries written",
		ThresholdMet: true,
	}}, overview.Achievements)
}

func TestGetOverviewEmptyWindowRejected(t *testing.T) {
	svc := newTestService(&fakeLogsRepo{}, &fakeJournalRepo{}, &fakeUserService{})

	_, err := svc.GetOverview(context.Background(), uuid.New(), nil)

	assert.Error(t, err)
}

func TestGetOverviewFetchErrorAborts(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-07"), 7)
	logsRepo := &fakeLogsRepo{waterErr: errors.New("connection reset")}
	svc := newTestService(logsRepo, &fakeJournalRepo{}, &fakeUserService{waterMl: 2000})

	overview, err := svc.GetOverview(context.Background(), uuid.New(), window)

	require.Error(t, err)
	assert.Nil(t, overview)
	assert.Contains(t, err.Error(), "water")
}

func TestGetOverviewJournalCountErrorAborts(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-07"), 7)
	svc := newTestService(&fakeLogsRepo{}, &fakeJournalRepo{countErr: errors.New("timeout")}, &fakeUserService{})

	_, err := svc.GetOverview(context.Background(), uuid.New(), window)

	assert.Error(t, err)
}

func TestGetOverviewTargetsFallBackToDefault(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-07"), 7)
	users := &fakeUserService{targetsErr: user.ErrUserNotFound}
	svc := newTestService(&fakeLogsRepo{}, &fakeJournalRepo{}, users)

	overview, err := svc.GetOverview(context.Background(), uuid.New(), window)

	require.NoError(t, err)
	assert.Equal(t, 2000, overview.Targets.WaterMl)
}
