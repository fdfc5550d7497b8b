package plans

import "time"

// IsDayAccessible reports whether a plan day can be interacted with.
// Days unlock from weekStart through today; later days stay locked.
// Unknown day names are never accessible.
func IsDayAccessible(day string, weekStart, today time.Weekday) bool {
	weekday, ok := ParseWeekday(day)
	if !ok {
		return false
	}
	return weekOffset(weekday, weekStart) <= weekOffset(today, weekStart)
}

func weekOffset(day, weekStart time.Weekday) int {
	return (int(day) - int(weekStart) + 7) % 7
}

// WeekStart is the weekday the current plan week began on, in the user's location.
// The current week began one renewal period before the next renewal.
// Without metadata the week starts on Monday.
func WeekStart(meta *Metadata, loc *time.Location) time.Weekday {
	if loc == nil {
		loc = time.UTC
	}
	switch {
	case meta == nil:
		return time.Monday
	case !meta.RenewalDate.IsZero():
		return meta.RenewalDate.Add(-meta.Type.RenewalPeriod()).In(loc).Weekday()
	case !meta.StartDate.IsZero():
		return meta.StartDate.In(loc).Weekday()
	}
	return time.Monday
}
