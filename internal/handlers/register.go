package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

func sessionID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// POST /api/sessions/{id}/register
// Idempotent toggle of the logged-in trainee on the roster. The client
// applies an optimistic update before calling; on any error it re-fetches
// the schedule, so responses carry the authoritative session.
func Register(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	phone := traineePhone(r)
	if phone == "" {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	sess, err := svc.ToggleRegistration(db.Conn(), id, phone, isAdmin(r))
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrCapacityExceeded):
			writeError(w, http.StatusConflict, "session is full")
		case errors.Is(err, svc.ErrSessionCancelled):
			writeError(w, http.StatusConflict, "session is cancelled")
		case errors.Is(err, svc.ErrRestricted):
			writeError(w, http.StatusForbidden, "registration is blocked for this account")
		case errors.Is(err, svc.ErrUserNotFound), errors.Is(err, svc.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "not found")
		default:
			writeError(w, http.StatusInternalServerError, "db error")
		}
		return
	}
	writeJSON(w, http.StatusOK, sess)
}
