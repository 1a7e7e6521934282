package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
	"github.com/vitalogapp/vitalog-backend/internal/domain/user"
)

// Options fixes the policy knobs the aggregation pipeline runs with.
type Options struct {
	StreakGrace        bool
	DefaultWaterTarget int
}

// Service assembles the dashboard: it fetches the raw streams, then runs the
// pure aggregation pipeline over the fully-resolved slices. The window is
// always supplied by the caller so the pipeline itself never reads the
// clock.
type Service interface {
	GetOverview(ctx context.Context, userID uuid.UUID, window []dates.CalendarDate) (*Overview, error)
}

type service struct {
	logsRepo    logs.Repository
	journalRepo journal.Repository
	userService user.Service
	logger      *zap.Logger
	opts        Options
}

func NewService(logsRepo logs.Repository, journalRepo journal.Repository, userService user.Service, logger *zap.Logger, opts Options) Service {
	return &service{
		logsRepo:    logsRepo,
		journalRepo: journalRepo,
		userService: userService,
		logger:      logger,
		opts:        opts,
	}
}

// GetOverview fans the stream fetches out concurrently, waits for all of
// them, and only then aggregates. Any fetch failure aborts aggregation
// entirely; the pipeline is never invoked with partial data.
func (s *service) GetOverview(ctx context.Context, userID uuid.UUID, window []dates.CalendarDate) (*Overview, error) {
	if len(window) == 0 {
		return nil, fmt.Errorf("dashboard window must not be empty")
	}
	from := window[0].Time()
	to := window[len(window)-1].Time()

	var (
		streams      Streams
		journalTotal int64
		wg           sync.WaitGroup
		mu           sync.Mutex
		fetchErr     error
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if fetchErr == nil {
			fetchErr = err
		}
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		entries, err := s.logsRepo.ListSleepRange(ctx, userID, from, to)
		if err != nil {
			fail(fmt.Errorf("failed to fetch sleep logs: %w", err))
			return
		}
		streams.Sleep = entries
	}()
	go func() {
		defer wg.Done()
		entries, err := s.logsRepo.ListWaterRange(ctx, userID, from, to)
		if err != nil {
			fail(fmt.Errorf("failed to fetch water logs: %w", err))
			return
		}
		streams.Water = entries
	}()
	go func() {
		defer wg.Done()
		entries, err := s.logsRepo.ListMoodRange(ctx, userID, from, to)
		if err != nil {
			fail(fmt.Errorf("failed to fetch mood logs: %w", err))
			return
		}
		streams.Mood = entries
	}()
	go func() {
		defer wg.Done()
		entries, err := s.logsRepo.ListExerciseRange(ctx, userID, from, to)
		if err != nil {
			fail(fmt.Errorf("failed to fetch exercise logs: %w", err))
			return
		}
		streams.Exercise = entries
	}()
	go func() {
		defer wg.Done()
		count, err := s.journalRepo.CountByUser(ctx, userID)
		if err != nil {
			fail(fmt.Errorf("failed to count journal entries: %w", err))
			return
		}
		journalTotal = count
	}()
	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	waterTarget, _, err := s.userService.GetTargets(ctx, userID)
	if err != nil {
		s.logger.Warn("Falling back to default water target",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		waterTarget = s.opts.DefaultWaterTarget
	}
	targets := Targets{WaterMl: waterTarget}

	start := time.Now()
	summaries := Aggregate(streams, window)

	today := window[len(window)-1]
	streakOpts := StreakOptions{GracePeriod: s.opts.StreakGrace}
	streaks := Streaks{
		Sleep: ComputeStreak(goalSeries(summaries,
			func(s DailySummary) bool { return s.SleepHours > 0 },
			func(s DailySummary) bool { return s.SleepHours >= minSleepHours },
		), today, streakOpts),
		Water: ComputeStreak(goalSeries(summaries,
			func(s DailySummary) bool { return s.WaterMl > 0 },
			func(s DailySummary) bool { return s.WaterMl >= targets.WaterMl },
		), today, streakOpts),
		Exercise: ComputeStreak(goalSeries(summaries,
			func(s DailySummary) bool { return s.ExerciseMinutes > 0 },
			func(s DailySummary) bool { return s.ExerciseMinutes > 0 },
		), today, streakOpts),
	}

	achievements := EvaluateAchievements(summaries, int(journalTotal), targets)

	s.logger.Debug("Dashboard aggregation complete",
		zap.String("user_id", userID.String()),
		zap.Int("window_days", len(window)),
		zap.Int("achievements", len(achievements)),
		zap.Duration("elapsed", time.Since(start)))

	return &Overview{
		Summaries:    summaries,
		Streaks:      streaks,
		Achievements: achievements,
		Targets:      targets,
	}, nil
}
