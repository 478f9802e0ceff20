package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

type scheduleSession struct {
	models.TrainingSession
	Status          svc.SessionStatus `json:"status"`
	RegisteredCount int               `json:"registeredCount"`
	Registered      bool              `json:"registered"` // for the requesting trainee
}

type scheduleDay struct {
	Date     string            `json:"date"`
	Weather  *weatherPayload   `json:"weather,omitempty"`
	Sessions []scheduleSession `json:"sessions"`
}

type weatherPayload struct {
	MaxTemp float64 `json:"maxTemp"`
	Code    int     `json:"code"`
}

// GET /api/schedule?date=YYYY-MM-DD
// Returns the Sunday-starting week containing the date (default today).
// Hidden sessions are filtered for trainees; the admin view keeps them.
func Schedule(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(tz)
	ref := now
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, tz)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		ref = parsed
	}

	start := svc.WeekStart(ref)
	end := start.AddDate(0, 0, 7)

	var sessions []models.TrainingSession
	if err := db.Conn().
		Where("date >= ? AND date < ?", start, end).
		Order("date asc, start_time asc").
		Find(&sessions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}

	admin := isAdmin(r)
	me := traineePhone(r)

	byDay := make(map[string][]scheduleSession)
	for _, s := range sessions {
		if s.IsHidden && !admin {
			continue
		}
		key := s.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], scheduleSession{
			TrainingSession: s,
			Status:          svc.DeriveStatus(s, now, tz),
			RegisteredCount: len(s.Registered),
			Registered:      me != "" && s.Registered.Contains(me),
		})
	}

	warmWeather(r.Context(), now.Format("2006-01-02"))

	days := make([]scheduleDay, 0, 7)
	for _, d := range svc.WeekDays(start) {
		key := d.Format("2006-01-02")
		day := scheduleDay{Date: key, Sessions: byDay[key]}
		if day.Sessions == nil {
			day.Sessions = []scheduleSession{}
		}
		if wf, ok := dayWeather(key); ok {
			day.Weather = wf
		}
		days = append(days, day)
	}

	var cfg models.AppConfig
	_ = db.Conn().First(&cfg, 1).Error

	writeJSON(w, http.StatusOK, map[string]any{
		"weekStart":     start.Format("2006-01-02"),
		"days":          days,
		"urgentMessage": cfg.UrgentMessage,
	})
}

// warmWeather does at most one live fetch when the cache has no entry for
// today; missing weather is never an error.
func warmWeather(ctx context.Context, today string) {
	if weatherCache == nil || weatherClient == nil || appCfg == nil {
		return
	}
	if _, ok := weatherCache.Get(today); ok {
		return
	}
	weatherCache.Refresh(ctx, weatherClient, appCfg.WeatherLat, appCfg.WeatherLon, 14)
}

// dayWeather reads the prefetched cache only.
func dayWeather(date string) (*weatherPayload, bool) {
	if weatherCache == nil {
		return nil, false
	}
	if df, ok := weatherCache.Get(date); ok {
		return &weatherPayload{MaxTemp: df.MaxTemp, Code: df.Code}, true
	}
	return nil, false
}
