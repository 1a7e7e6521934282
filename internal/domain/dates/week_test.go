package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekStart(t *testing.T) {
	assert.Equal(t, WeekStartMonday, ParseWeekStart("monday"))
	assert.Equal(t, WeekStartMonday, ParseWeekStart("Monday"))
	assert.Equal(t, WeekStartSunday, ParseWeekStart("sunday"))
	assert.Equal(t, WeekStartSunday, ParseWeekStart(""))
	assert.Equal(t, WeekStartSunday, ParseWeekStart("wednesday"))
}

func TestStartOfWeek(t *testing.T) {
	// 2024-03-06 is a Wednesday.
	wednesday := MustParse("2024-03-06")

	assert.Equal(t, MustParse("2024-03-03"), wednesday.StartOfWeek(WeekStartSunday))
	assert.Equal(t, MustParse("2024-03-04"), wednesday.StartOfWeek(WeekStartMonday))

	// A Sunday is its own week start under the Sunday convention but belongs
	// to the previous Monday week.
	sunday := MustParse("2024-03-03")
	assert.Equal(t, sunday, sunday.StartOfWeek(WeekStartSunday))
	assert.Equal(t, MustParse("2024-02-26"), sunday.StartOfWeek(WeekStartMonday))

	monday := MustParse("2024-03-04")
	assert.Equal(t, MustParse("2024-03-03"), monday.StartOfWeek(WeekStartSunday))
	assert.Equal(t, monday, monday.StartOfWeek(WeekStartMonday))
}

func TestSameWeek(t *testing.T) {
	sunday := MustParse("2024-03-03")
	monday := MustParse("2024-03-04")

	assert.True(t, SameWeek(sunday, monday, WeekStartSunday))
	assert.False(t, SameWeek(sunday, monday, WeekStartMonday))
	assert.True(t, SameWeek(monday, MustParse("2024-03-10"), WeekStartMonday))
	assert.False(t, SameWeek(monday, MustParse("2024-03-10"), WeekStartSunday))
}
