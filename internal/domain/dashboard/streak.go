package dashboard

import (
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
)

// StreakOptions controls the grace period policy. With GracePeriod set, a
// most-recent date that is missing from the series does not zero out an
// otherwise-active streak as long as it is at most one day behind today:
// "you haven't logged today yet, but yesterday's streak still counts". This
// is a documented product decision, kept configurable because it may not
// generalize to every streak type.
type StreakOptions struct {
	GracePeriod bool
}

// ComputeStreak derives the current and longest streak from a goal series.
// The series must be ordered oldest to newest over contiguous dates; dates
// the user has not decided yet may be absent from the tail. today anchors
// the grace check; the function never reads the clock itself, so identical
// inputs always yield identical output.
func ComputeStreak(series []DaySignal, today dates.CalendarDate, opts StreakOptions) StreakState {
	state := StreakState{}
	if len(series) == 0 {
		return state
	}

	// Longest: single forward pass. A false entry or a date gap resets the
	// running counter to 0, not 1.
	run := 0
	for i, signal := range series {
		if !signal.MetGoal {
			run = 0
			continue
		}
		if i > 0 && series[i-1].Date != signal.Date.AddDays(-1) && run > 0 {
			run = 0
		}
		run++
		if run > state.Longest {
			state.Longest = run
		}
	}

	// Current: scan backward from the newest present date. If that date is
	// behind today, the streak survives only under the grace policy and only
	// by a single day.
	newest := series[len(series)-1]
	gap := today.Sub(newest.Date)
	if gap > 0 && (!opts.GracePeriod || gap > 1) {
		return state
	}

	for i := len(series) - 1; i >= 0; i-- {
		if !series[i].MetGoal {
			break
		}
		if i < len(series)-1 && series[i].Date != series[i+1].Date.AddDays(-1) {
			break
		}
		state.Current++
	}

	// Reconciliation: the grace path can make current exceed the forward
	// scan's maximum, which must then be reported as a tie.
	if state.Current > state.Longest {
		state.Longest = state.Current
	}

	return state
}

// goalSeries projects a summary window into a goal series, dropping trailing
// dates where the goal is still undecided (no data yet today).
func goalSeries(summaries []DailySummary, hasData func(DailySummary) bool, metGoal func(DailySummary) bool) []DaySignal {
	series := make([]DaySignal, 0, len(summaries))
	for _, s := range summaries {
		series = append(series, DaySignal{Date: s.Date(), MetGoal: metGoal(s)})
	}
	for len(series) > 0 && !hasData(summaries[len(series)-1]) {
		series = series[:len(series)-1]
	}
	return series
}
