package journal

import (
	"math"
	"sort"

	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
)

// StatsOptions parameterizes the stats computation. WeekStart follows the
// client locale; GracePeriod mirrors the dashboard streak policy (today's
// absence does not break an active streak).
type StatsOptions struct {
	WeekStart   dates.WeekStart
	GracePeriod bool
}

// ComputeStats derives journal statistics from the entry history. Unlike the
// dashboard window, the streak here runs over distinct entry dates: several
// entries on one date collapse to a single "day logged" signal, and the gap
// between consecutive distinct dates is measured in whole days (timestamps
// collapse to their calendar date first, absorbing jitter). A gap of exactly
// one day continues the streak; any other gap breaks it.
//
// The function is pure; today is supplied by the caller.
func ComputeStats(entries []JournalEntry, today dates.CalendarDate, opts StatsOptions) JournalStats {
	stats := JournalStats{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	// Collapse to sorted distinct entry dates.
	seen := make(map[dates.CalendarDate]struct{}, len(entries))
	distinct := make([]dates.CalendarDate, 0, len(entries))
	for _, e := range entries {
		d := dates.FromTime(e.EntryDate)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	// Longest streak: full-history scan; a gap other than one day resets the
	// running counter.
	run := 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i].Sub(distinct[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > stats.LongestStreak {
			stats.LongestStreak = run
		}
	}
	if stats.LongestStreak == 0 {
		stats.LongestStreak = 1
	}

	// Current streak: anchored at the most recent distinct date, which must
	// be today, or yesterday under the grace policy.
	newest := distinct[len(distinct)-1]
	gap := today.Sub(newest)
	if gap == 0 || (opts.GracePeriod && gap == 1) {
		stats.CurrentStreak = 1
		for i := len(distinct) - 1; i > 0; i-- {
			if distinct[i].Sub(distinct[i-1]) != 1 {
				break
			}
			stats.CurrentStreak++
		}
	}

	// Reconciliation, same as the dashboard calculator.
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	// Average mood score over entries that have one; entries without a score
	// are excluded from numerator and denominator, not treated as zero.
	var sum float64
	var scored int
	for _, e := range entries {
		insights := e.Insights()
		if insights == nil || insights.MoodScore == nil {
			continue
		}
		sum += *insights.MoodScore
		scored++
	}
	if scored > 0 {
		stats.AverageMoodScore = math.Round(sum/float64(scored)*10) / 10
	}

	// Entries falling inside the current calendar week.
	weekStart := today.StartOfWeek(opts.WeekStart)
	for _, e := range entries {
		d := dates.FromTime(e.EntryDate)
		if d >= weekStart && d <= today {
			stats.WeeklyCount++
		}
	}

	return stats
}
