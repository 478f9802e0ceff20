package services

import (
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// Display states for a session card.
const (
	StateCancelled     = "cancelled"
	StateHappening     = "happening"
	StateZoom          = "zoom"
	StateHappeningZoom = "happening_zoom"
	StateScheduled     = "scheduled"
)

// SessionStatus is derived per request, never stored; only the underlying
// flags persist.
type SessionStatus struct {
	State     string `json:"state"`
	Happening bool   `json:"happening"`
	Zoom      bool   `json:"zoom"`
	Full      bool   `json:"full"`
	Trial     bool   `json:"trial,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
}

// DeriveStatus computes a session's display state at the given wall-clock
// time. Cancelled is terminal. A session is "happening" when manually
// started, or when the start lies within (now-1.5h, now+3h]:
// diffHours = start - now, happening iff diffHours <= 3 && diffHours > -1.5.
func DeriveStatus(s models.TrainingSession, now time.Time, loc *time.Location) SessionStatus {
	st := SessionStatus{
		Full:   len(s.Registered) >= s.MaxCapacity,
		Trial:  s.IsTrial,
		Hidden: s.IsHidden,
		Zoom:   s.IsZoomSession || s.ZoomLink != "",
	}

	if s.IsCancelled {
		st.State = StateCancelled
		return st
	}

	diffHours := s.StartAt(loc).Sub(now).Hours()
	st.Happening = s.ManualHasStarted || (diffHours <= 3 && diffHours > -1.5)

	switch {
	case st.Happening && st.Zoom:
		st.State = StateHappeningZoom
	case st.Happening:
		st.State = StateHappening
	case st.Zoom:
		st.State = StateZoom
	default:
		st.State = StateScheduled
	}
	return st
}
