package services

import (
	"testing"
	"time"
)

// TestWeekStart verifies Sunday-anchored week keys.
func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{day(2025, time.March, 23), "2025-03-23"}, // Sunday maps to itself
		{day(2025, time.March, 26), "2025-03-23"}, // Wednesday
		{day(2025, time.March, 29), "2025-03-23"}, // Saturday
		{day(2025, time.March, 30), "2025-03-30"}, // next Sunday
	}
	for _, c := range cases {
		if got := WeekStart(c.in).Format("2006-01-02"); got != c.want {
			t.Errorf("WeekStart(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(day(2025, time.March, 23))
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7", len(days))
	}
	if days[0].Weekday() != time.Sunday || days[6].Weekday() != time.Saturday {
		t.Errorf("week runs %v..%v, want Sunday..Saturday", days[0].Weekday(), days[6].Weekday())
	}
}
