package dates

import (
	"fmt"
	"time"
)

// CalendarDate identifies a day by year, month and day, independent of
// time-of-day or timezone offset within that day. The underlying value is
// whole days since the Unix epoch, so equality and gap arithmetic are plain
// integer operations. All time.Time parsing happens in Parse and FromTime;
// nothing else in the aggregation code touches time zones.
type CalendarDate int

const layout = "2006-01-02"

// Parse converts a YYYY-MM-DD string to a CalendarDate.
func Parse(s string) (CalendarDate, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse for compile-time constants in tests and defaults.
func MustParse(s string) CalendarDate {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime collapses a timestamp to the calendar date it falls on in its own
// location. Rounding to the containing day absorbs timestamp jitter around
// midnight boundaries.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return CalendarDate(days)
}

// Today returns the calendar date for the current wall clock in loc.
func Today(loc *time.Location) CalendarDate {
	return FromTime(time.Now().In(loc))
}

func (d CalendarDate) String() string {
	return d.Time().Format(layout)
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

// Label returns the short display form used by dashboard charts, e.g. "Mon 2".
func (d CalendarDate) Label() string {
	return d.Time().Format("Mon 2")
}

// AddDays returns the date n days after d (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return d + CalendarDate(n)
}

// Sub returns the whole-day gap d minus other.
func (d CalendarDate) Sub(other CalendarDate) int {
	return int(d - other)
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Window returns the trailing n contiguous dates ending at end, ordered
// oldest to newest. Downstream consumers depend on the fixed length and
// ordering, so n < 1 yields an empty window rather than a partial one.
func Window(end CalendarDate, n int) []CalendarDate {
	if n < 1 {
		return []CalendarDate{}
	}
	window := make([]CalendarDate, n)
	for i := 0; i < n; i++ {
		window[i] = end.AddDays(i - n + 1)
	}
	return window
}
