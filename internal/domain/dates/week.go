package dates

import (
	"strings"
)

// WeekStart is the first day of the calendar week. The client app is
// multi-locale, so the boundary is configuration, not a constant.
type WeekStart int

const (
	WeekStartSunday WeekStart = iota
	WeekStartMonday
)

// ParseWeekStart maps a config/query value to a WeekStart. Unknown values
// fall back to Sunday.
func ParseWeekStart(s string) WeekStart {
	if strings.EqualFold(s, "monday") {
		return WeekStartMonday
	}
	return WeekStartSunday
}

func (w WeekStart) String() string {
	if w == WeekStartMonday {
		return "monday"
	}
	return "sunday"
}

// StartOfWeek returns the first date of the calendar week containing d.
func (d CalendarDate) StartOfWeek(ws WeekStart) CalendarDate {
	offset := int(d.Weekday()) // days since Sunday
	if ws == WeekStartMonday {
		offset = (int(d.Weekday()) + 6) % 7 // days since Monday
	}
	return d.AddDays(-offset)
}

// SameWeek reports whether a and b fall in the same calendar week.
func SameWeek(a, b CalendarDate, ws WeekStart) bool {
	return a.StartOfWeek(ws) == b.StartOfWeek(ws)
}
