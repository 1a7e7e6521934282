package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", d.String())

	_, err = Parse("04/03/2024")
	assert.Error(t, err)

	_, err = Parse("2024-13-40")
	assert.Error(t, err)
}

func TestFromTimeCollapsesTimeOfDay(t *testing.T) {
	base := MustParse("2024-03-04")

	tests := []struct {
		name string
		ts   time.Time
	}{
		{"midnight", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"noon", time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)},
		{"just before next midnight", time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, base, FromTime(tt.ts))
		})
	}
}

func TestFromTimeUsesLocalCalendarDate(t *testing.T) {
	// 23:00 on March 4 in UTC+5 is March 4 locally even though the instant
	// falls on March 4 18:00 UTC; 01:00 on March 5 in UTC+5 is March 5
	// locally though the instant is still March 4 UTC.
	loc := time.FixedZone("UTC+5", 5*3600)

	assert.Equal(t, MustParse("2024-03-04"), FromTime(time.Date(2024, 3, 4, 23, 0, 0, 0, loc)))
	assert.Equal(t, MustParse("2024-03-05"), FromTime(time.Date(2024, 3, 5, 1, 0, 0, 0, loc)))
}

func TestArithmetic(t *testing.T) {
	d := MustParse("2024-03-04")

	assert.Equal(t, MustParse("2024-03-05"), d.AddDays(1))
	assert.Equal(t, MustParse("2024-02-29"), d.AddDays(-4)) // leap year
	assert.Equal(t, 1, MustParse("2024-03-05").Sub(d))
	assert.Equal(t, -31, MustParse("2024-02-02").Sub(d))
}

func TestYearBoundary(t *testing.T) {
	assert.Equal(t, MustParse("2025-01-01"), MustParse("2024-12-31").AddDays(1))
	assert.Equal(t, 1, MustParse("2025-01-01").Sub(MustParse("2024-12-31")))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Mon 4", MustParse("2024-03-04").Label())
	assert.Equal(t, "Sun 3", MustParse("2024-03-03").Label())
}

func TestWindow(t *testing.T) {
	end := MustParse("2024-03-07")

	window := Window(end, 7)

	require.Len(t, window, 7)
	assert.Equal(t, MustParse("2024-03-01"), window[0])
	assert.Equal(t, end, window[6])
	for i := 1; i < len(window); i++ {
		assert.Equal(t, 1, window[i].Sub(window[i-1]))
	}
}

func TestWindowDegenerateSizes(t *testing.T) {
	end := MustParse("2024-03-07")

	assert.Equal(t, []CalendarDate{end}, Window(end, 1))
	assert.Empty(t, Window(end, 0))
	assert.Empty(t, Window(end, -3))
}
