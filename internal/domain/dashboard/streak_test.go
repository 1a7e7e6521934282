package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
)

// signals builds a contiguous goal series ending the day the last value
// covers, oldest to newest.
func signals(start string, met ...bool) []DaySignal {
	first := dates.MustParse(start)
	series := make([]DaySignal, 0, len(met))
	for i, m := range met {
		series = append(series, DaySignal{Date: first.AddDays(i), MetGoal: m})
	}
	return series
}

func TestComputeStreak(t *testing.T) {
	today := dates.MustParse("2024-03-07")
	grace := StreakOptions{GracePeriod: true}
	strict := StreakOptions{GracePeriod: false}

	tests := []struct {
		name     string
		series   []DaySignal
		today    dates.CalendarDate
		opts     StreakOptions
		expected StreakState
	}{
		{
			name:     "empty series",
			series:   []DaySignal{},
			today:    today,
			opts:     grace,
			expected: StreakState{},
		},
		{
			name:     "all goals met through today",
			series:   signals("2024-03-03", true, true, true, true, true),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 5, Longest: 5},
		},
		{
			name: "break before the tail caps the current streak",
			// Sleep hours [6.5, 7, 6.2, 5, 8] against a 6h goal.
			series:   signals("2024-03-03", true, true, true, false, true),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 1, Longest: 3},
		},
		{
			name:     "newest date is yesterday, grace keeps the streak",
			series:   signals("2024-03-03", true, true, true, true),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 4, Longest: 4},
		},
		{
			name:     "newest date is yesterday, strict policy drops it",
			series:   signals("2024-03-03", true, true, true, true),
			today:    today,
			opts:     strict,
			expected: StreakState{Current: 0, Longest: 4},
		},
		{
			name:     "two day gap breaks the streak regardless of grace",
			series:   signals("2024-03-02", true, true, true, true),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 0, Longest: 4},
		},
		{
			name:     "longest run sits in the middle of the series",
			series:   signals("2024-03-01", true, false, true, true, true, false, true),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 1, Longest: 3},
		},
		{
			name:     "no goals met",
			series:   signals("2024-03-05", false, false, false),
			today:    today,
			opts:     grace,
			expected: StreakState{Current: 0, Longest: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ComputeStreak(tt.series, tt.today, tt.opts)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestComputeStreakDateGapResetsLongest(t *testing.T) {
	// Two runs of met goals separated by a missing date; the forward pass
	// must not bridge the gap.
	series := []DaySignal{
		{Date: dates.MustParse("2024-03-01"), MetGoal: true},
		{Date: dates.MustParse("2024-03-02"), MetGoal: true},
		{Date: dates.MustParse("2024-03-04"), MetGoal: true},
	}

	state := ComputeStreak(series, dates.MustParse("2024-03-04"), StreakOptions{GracePeriod: true})

	assert.Equal(t, 1, state.Current)
	assert.Equal(t, 2, state.Longest)
}

func TestComputeStreakLongestNeverBelowCurrent(t *testing.T) {
	todays := []string{"2024-03-05", "2024-03-06"}
	for _, todayStr := range todays {
		series := signals("2024-03-01", true, true, true, true, true)
		state := ComputeStreak(series, dates.MustParse(todayStr), StreakOptions{GracePeriod: true})
		assert.GreaterOrEqual(t, state.Longest, state.Current, "today=%s", todayStr)
	}
}

func TestComputeStreakMonotonicUnderExtension(t *testing.T) {
	// Appending another met day and advancing today never shrinks the
	// current streak.
	series := signals("2024-03-01", true, true, true)
	before := ComputeStreak(series, dates.MustParse("2024-03-03"), StreakOptions{GracePeriod: true})

	extended := signals("2024-03-01", true, true, true, true)
	after := ComputeStreak(extended, dates.MustParse("2024-03-04"), StreakOptions{GracePeriod: true})

	assert.Equal(t, before.Current+1, after.Current)
	assert.GreaterOrEqual(t, after.Longest, before.Longest)
}

func TestGoalSeriesTrimsUndecidedTail(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-04"), 4)
	summaries := Aggregate(Streams{}, window)
	summaries[0].SleepHours = 7
	summaries[1].SleepHours = 6.5
	// Days 3 and 4 have no data yet.

	series := goalSeries(summaries,
		func(s DailySummary) bool { return s.SleepHours > 0 },
		func(s DailySummary) bool { return s.SleepHours >= 6 },
	)

	assert.Len(t, series, 2)
	assert.Equal(t, dates.MustParse("2024-03-02"), series[1].Date)
	assert.True(t, series[1].MetGoal)
}

func TestGoalSeriesKeepsInteriorZeroDays(t *testing.T) {
	window := dates.Window(dates.MustParse("2024-03-03"), 3)
	summaries := Aggregate(Streams{}, window)
	summaries[0].WaterMl = 2000
	summaries[2].WaterMl = 2000
	// Middle day logged nothing; it is a decided miss, not an undecided tail.

	series := goalSeries(summaries,
		func(s DailySummary) bool { return s.WaterMl > 0 },
		func(s DailySummary) bool { return s.WaterMl >= 2000 },
	)

	assert.Len(t, series, 3)
	assert.False(t, series[1].MetGoal)
}
