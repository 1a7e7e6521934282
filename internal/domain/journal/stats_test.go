package journal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
)

func entryOn(date string) JournalEntry {
	return JournalEntry{
		EntryDate: dates.MustParse(date).Time(),
		Content:   "entry",
	}
}

func entryWithScore(date string, score float64) JournalEntry {
	e := entryOn(date)
	e.AIInsights = datatypes.JSON(fmt.Sprintf(`{"summary":"ok","mood_score":%g}`, score))
	return e
}

func TestComputeStatsEmptyHistory(t *testing.T) {
	stats := ComputeStats(nil, dates.MustParse("2024-03-04"), StatsOptions{})

	assert.Equal(t, JournalStats{}, stats)
}

func TestComputeStatsStreaks(t *testing.T) {
	grace := StatsOptions{GracePeriod: true}

	tests := []struct {
		name            string
		entryDates      []string
		today           string
		opts            StatsOptions
		expectedCurrent int
		expectedLongest int
	}{
		{
			name:            "gap before the newest date restarts the current streak",
			entryDates:      []string{"2024-03-01", "2024-03-02", "2024-03-04"},
			today:           "2024-03-04",
			opts:            grace,
			expectedCurrent: 1,
			expectedLongest: 2,
		},
		{
			name:            "contiguous history through today",
			entryDates:      []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"},
			today:           "2024-03-04",
			opts:            grace,
			expectedCurrent: 4,
			expectedLongest: 4,
		},
		{
			name:            "newest entry yesterday survives under grace",
			entryDates:      []string{"2024-03-02", "2024-03-03"},
			today:           "2024-03-04",
			opts:            grace,
			expectedCurrent: 2,
			expectedLongest: 2,
		},
		{
			name:            "newest entry yesterday breaks without grace",
			entryDates:      []string{"2024-03-02", "2024-03-03"},
			today:           "2024-03-04",
			opts:            StatsOptions{GracePeriod: false},
			expectedCurrent: 0,
			expectedLongest: 2,
		},
		{
			name:            "two day gap to today breaks regardless of grace",
			entryDates:      []string{"2024-03-01", "2024-03-02"},
			today:           "2024-03-04",
			opts:            grace,
			expectedCurrent: 0,
			expectedLongest: 2,
		},
		{
			name:            "single entry today",
			entryDates:      []string{"2024-03-04"},
			today:           "2024-03-04",
			opts:            grace,
			expectedCurrent: 1,
			expectedLongest: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]JournalEntry, 0, len(tt.entryDates))
			for _, d := range tt.entryDates {
				entries = append(entries, entryOn(d))
			}

			stats := ComputeStats(entries, dates.MustParse(tt.today), tt.opts)

			assert.Equal(t, tt.expectedCurrent, stats.CurrentStreak, "current streak")
			assert.Equal(t, tt.expectedLongest, stats.LongestStreak, "longest streak")
		})
	}
}

func TestComputeStatsSameDayEntriesCollapse(t *testing.T) {
	entries := []JournalEntry{
		entryOn("2024-03-03"),
		entryOn("2024-03-03"),
		entryOn("2024-03-03"),
		entryOn("2024-03-04"),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-04"), StatsOptions{GracePeriod: true})

	assert.Equal(t, 4, stats.TotalEntries)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.LongestStreak)
}

func TestComputeStatsUnsortedInput(t *testing.T) {
	entries := []JournalEntry{
		entryOn("2024-03-04"),
		entryOn("2024-03-02"),
		entryOn("2024-03-03"),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-04"), StatsOptions{GracePeriod: true})

	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestComputeStatsAverageMoodScore(t *testing.T) {
	// Scores [4, none, 2] average to 3.0; the unscored entry is excluded
	// from the denominator.
	entries := []JournalEntry{
		entryWithScore("2024-03-01", 4),
		entryOn("2024-03-02"),
		entryWithScore("2024-03-03", 2),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-03"), StatsOptions{GracePeriod: true})

	assert.InDelta(t, 3.0, stats.AverageMoodScore, 0.001)
}

func TestComputeStatsAverageMoodRoundsToOneDecimal(t *testing.T) {
	entries := []JournalEntry{
		entryWithScore("2024-03-01", 4),
		entryWithScore("2024-03-02", 3),
		entryWithScore("2024-03-03", 3),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-03"), StatsOptions{GracePeriod: true})

	assert.InDelta(t, 3.3, stats.AverageMoodScore, 0.001)
}

func TestComputeStatsNoScoredEntries(t *testing.T) {
	entries := []JournalEntry{
		entryOn("2024-03-01"),
		entryOn("2024-03-02"),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-02"), StatsOptions{GracePeriod: true})

	assert.Zero(t, stats.AverageMoodScore)
}

func TestComputeStatsInvalidInsightPayloadIgnored(t *testing.T) {
	broken := entryOn("2024-03-01")
	broken.AIInsights = datatypes.JSON([]byte(`{not json`))
	entries := []JournalEntry{broken, entryWithScore("2024-03-02", 5)}

	stats := ComputeStats(entries, dates.MustParse("2024-03-02"), StatsOptions{GracePeriod: true})

	assert.InDelta(t, 5.0, stats.AverageMoodScore, 0.001)
}

func TestComputeStatsWeeklyCountDependsOnWeekStart(t *testing.T) {
	// 2024-03-03 is a Sunday, 2024-03-04 a Monday.
	entries := []JournalEntry{
		entryOn("2024-03-02"), // Saturday, previous week either way
		entryOn("2024-03-03"), // Sunday
		entryOn("2024-03-04"), // Monday
	}
	today := dates.MustParse("2024-03-04")

	sunday := ComputeStats(entries, today, StatsOptions{WeekStart: dates.WeekStartSunday, GracePeriod: true})
	monday := ComputeStats(entries, today, StatsOptions{WeekStart: dates.WeekStartMonday, GracePeriod: true})

	assert.Equal(t, 2, sunday.WeeklyCount, "Sunday week start includes Sunday and Monday")
	assert.Equal(t, 1, monday.WeeklyCount, "Monday week start includes Monday only")
}

func TestComputeStatsWeeklyCountCountsEntriesNotDates(t *testing.T) {
	entries := []JournalEntry{
		entryOn("2024-03-04"),
		entryOn("2024-03-04"),
	}

	stats := ComputeStats(entries, dates.MustParse("2024-03-04"), StatsOptions{WeekStart: dates.WeekStartMonday})

	assert.Equal(t, 2, stats.WeeklyCount)
}
