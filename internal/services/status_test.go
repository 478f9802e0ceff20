package services

import (
	"testing"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

func statusSession(date time.Time, start string) models.TrainingSession {
	return models.TrainingSession{
		Date:        date,
		StartTime:   start,
		MaxCapacity: 10,
	}
}

// TestDeriveStatus_CancelledIsTerminal: cancelled wins regardless of time or
// other flags.
func TestDeriveStatus_CancelledIsTerminal(t *testing.T) {
	now := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)
	s := statusSession(day(2025, time.March, 10), "18:00")
	s.IsCancelled = true
	s.ManualHasStarted = true
	s.IsZoomSession = true

	st := DeriveStatus(s, now, time.UTC)
	if st.State != StateCancelled {
		t.Errorf("State = %q, want %q", st.State, StateCancelled)
	}
	if st.Happening {
		t.Error("cancelled session reported happening")
	}
}

// TestDeriveStatus_HappeningWindow checks the [start-3h, start+1.5h) window:
// diffHours <= 3 && diffHours > -1.5.
func TestDeriveStatus_HappeningWindow(t *testing.T) {
	s := statusSession(day(2025, time.March, 10), "18:00")
	cases := []struct {
		now  time.Time
		want bool
	}{
		{time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC), false}, // 4h before
		{time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC), true},  // exactly 3h before
		{time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC), true},  // at start
		{time.Date(2025, time.March, 10, 19, 0, 0, 0, time.UTC), true},  // 1h after
		{time.Date(2025, time.March, 10, 19, 30, 0, 0, time.UTC), false}, // exactly 1.5h after
		{time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC), false},  // 2h after
	}
	for _, c := range cases {
		st := DeriveStatus(s, c.now, time.UTC)
		if st.Happening != c.want {
			t.Errorf("now=%v: Happening = %v, want %v", c.now, st.Happening, c.want)
		}
	}
}

func TestDeriveStatus_ManualStartOverridesClock(t *testing.T) {
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC) // 10h early
	s := statusSession(day(2025, time.March, 10), "18:00")
	s.ManualHasStarted = true
	if st := DeriveStatus(s, now, time.UTC); !st.Happening {
		t.Error("manually started session not reported happening")
	}
}

func TestDeriveStatus_ZoomBadge(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	s := statusSession(day(2025, time.March, 10), "18:00")
	s.ZoomLink = "https://zoom.us/j/123"

	st := DeriveStatus(s, now, time.UTC)
	if !st.Zoom || st.State != StateZoom {
		t.Errorf("zoom link alone: Zoom=%v State=%q", st.Zoom, st.State)
	}

	s.ManualHasStarted = true
	st = DeriveStatus(s, now, time.UTC)
	if st.State != StateHappeningZoom {
		t.Errorf("happening+zoom: State = %q, want %q", st.State, StateHappeningZoom)
	}
}

func TestDeriveStatus_FullComputedLive(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	s := statusSession(day(2025, time.March, 10), "18:00")
	s.MaxCapacity = 2
	s.Registered = models.PhoneList{"0501111111", "0502222222"}
	if st := DeriveStatus(s, now, time.UTC); !st.Full {
		t.Error("roster at capacity not reported full")
	}
	s.Registered = s.Registered.Remove("0502222222")
	if st := DeriveStatus(s, now, time.UTC); st.Full {
		t.Error("roster below capacity reported full")
	}
}
