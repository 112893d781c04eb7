// Package timex contains time related helpers
package timex

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// DayStart returns t truncated to 00:00:00.000 in t's location
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last representable millisecond of t's day (23:59:59.999)
func DayEnd(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// WeekStart returns 00:00:00.000 of the Sunday that starts t's week
func WeekStart(t time.Time) time.Time {
	return DayStart(t.AddDate(0, 0, -int(t.Weekday())))
}

// WeekEnd returns 23:59:59.999 of the Saturday that ends t's week
func WeekEnd(t time.Time) time.Time {
	return DayEnd(WeekStart(t).AddDate(0, 0, 6))
}
