package services

import "time"

// WeekStart returns the Sunday that starts t's calendar week, at midnight in
// t's location. Weeks run Sunday..Saturday.
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekDays lists the seven days of the week starting at start.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
