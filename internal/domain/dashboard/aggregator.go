package dashboard

import (
	"math"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
)

// Aggregate buckets heterogeneous log streams into one DailySummary per
// window date, oldest to newest in the caller-supplied order. Sleep and mood
// are point-in-time states, so the entry with the latest created_at wins
// (ties resolve to the later one in input order, which keeps the result
// deterministic for a fixed input). Water and exercise are additive and sum
// across all matching entries. Dates with no logs yield a zero-filled
// summary rather than being omitted; chart and streak consumers depend on a
// fixed-length, date-contiguous result.
//
// Aggregate is pure: no I/O, no clock reads, no error paths. Malformed
// numeric values coerce to zero.
func Aggregate(streams Streams, window []dates.CalendarDate) []DailySummary {
	summaries := make([]DailySummary, 0, len(window))

	for _, day := range window {
		summary := DailySummary{
			DateKey: day.String(),
			Label:   day.Label(),
			date:    day,
		}

		var latestSleep *logs.SleepLog
		for i := range streams.Sleep {
			entry := &streams.Sleep[i]
			if dates.FromTime(entry.LogDate) != day {
				continue
			}
			if latestSleep == nil || !entry.CreatedAt.Before(latestSleep.CreatedAt) {
				latestSleep = entry
			}
		}
		if latestSleep != nil {
			summary.SleepHours = coerceFloat(latestSleep.DurationHours)
			summary.SleepQuality = coerceInt(latestSleep.Quality)
		}

		for i := range streams.Water {
			entry := &streams.Water[i]
			if dates.FromTime(entry.LogDate) == day {
				summary.WaterMl += coerceInt(entry.AmountMl)
			}
		}

		var latestMood *logs.MoodLog
		for i := range streams.Mood {
			entry := &streams.Mood[i]
			if dates.FromTime(entry.LogDate) != day {
				continue
			}
			if latestMood == nil || !entry.CreatedAt.Before(latestMood.CreatedAt) {
				latestMood = entry
			}
		}
		if latestMood != nil {
			mood := latestMood.Mood
			summary.Mood = &mood
			summary.MoodScore = coerceInt(latestMood.Score)
		}

		for i := range streams.Exercise {
			entry := &streams.Exercise[i]
			if dates.FromTime(entry.LogDate) == day {
				summary.ExerciseMinutes += coerceInt(entry.DurationMinutes)
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// coerceFloat maps NaN, infinities and negatives to 0; aggregation never
// raises on malformed values.
func coerceFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func coerceInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
