package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

type sessionInput struct {
	Type        string   `json:"type"`
	Date        string   `json:"date"` // "2006-01-02"
	Time        string   `json:"time"` // "15:04"
	Location    string   `json:"location"`
	MaxCapacity int      `json:"maxCapacity"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	IsTrial     bool     `json:"isTrial"`
	IsZoom      bool     `json:"isZoomSession"`
	ZoomLink    string   `json:"zoomLink"`
	IsHidden    bool     `json:"isHidden"`
	IsCancelled bool     `json:"isCancelled"`
	HasStarted  bool     `json:"manualHasStarted"`
	WaitingList []string `json:"waitingList"`
}

func (in sessionInput) validate() (time.Time, string) {
	if strings.TrimSpace(in.Type) == "" {
		return time.Time{}, "type is required"
	}
	d, err := time.ParseInLocation("2006-01-02", in.Date, tz)
	if err != nil {
		return time.Time{}, "invalid date"
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return time.Time{}, "invalid time"
	}
	if in.MaxCapacity <= 0 {
		return time.Time{}, "capacity must be positive"
	}
	return d, ""
}

func (in sessionInput) apply(s *models.TrainingSession, date time.Time) {
	s.Type = in.Type
	s.Date = date
	s.StartTime = in.Time
	s.Location = in.Location
	s.MaxCapacity = in.MaxCapacity
	s.Description = in.Description
	s.Color = in.Color
	s.IsTrial = in.IsTrial
	s.IsZoomSession = in.IsZoom
	s.ZoomLink = in.ZoomLink
	s.IsHidden = in.IsHidden
	s.IsCancelled = in.IsCancelled
	s.ManualHasStarted = in.HasStarted
	wl := models.PhoneList{}
	for _, p := range in.WaitingList {
		if n := svc.NormPhone(p); n != "" {
			wl = append(wl, n)
		}
	}
	s.WaitingList = wl
}

// GET /api/admin/sessions?from=...&to=...
func AdminListSessions(w http.ResponseWriter, r *http.Request) {
	q := db.Conn().Order("date asc, start_time asc")
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, tz); err == nil {
			q = q.Where("date >= ?", t)
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, tz); err == nil {
			q = q.Where("date <= ?", t)
		}
	}
	var sessions []models.TrainingSession
	if err := q.Find(&sessions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// POST /api/admin/sessions
func AdminCreateSession(w http.ResponseWriter, r *http.Request) {
	var in sessionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	date, msg := in.validate()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var sess models.TrainingSession
	in.apply(&sess, date)
	sess.Registered = models.PhoneList{}
	if err := db.Conn().Create(&sess).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// PUT /api/admin/sessions/{id}
func AdminUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var sess models.TrainingSession
	if err := db.Conn().First(&sess, id).Error; err != nil {
		notFound(w, err)
		return
	}

	var in sessionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	date, msg := in.validate()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	in.apply(&sess, date)
	if err := db.Conn().Save(&sess).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// DELETE /api/admin/sessions/{id}
func AdminDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	res := db.Conn().Delete(&models.TrainingSession{}, id)
	if res.Error != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	if res.RowsAffected == 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PUT /api/admin/sessions/{id}/roster {"phones": [...]}
// Direct roster write. The coach can overbook, so capacity is not enforced.
func AdminSetRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var sess models.TrainingSession
	if err := db.Conn().First(&sess, id).Error; err != nil {
		notFound(w, err)
		return
	}

	var in struct {
		Phones []string `json:"phones"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	roster := models.PhoneList{}
	for _, p := range in.Phones {
		n := svc.NormPhone(p)
		if n != "" && !roster.Contains(n) {
			roster = append(roster, n)
		}
	}
	sess.Registered = roster
	if err := db.Conn().Save(&sess).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}
