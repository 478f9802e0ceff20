package services

import (
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// streakFloorYear bounds the backward streak walk.
const streakFloorYear = 2023

// weeklyStreakMin is how many attended sessions make a week count.
const weeklyStreakMin = 3

// Attended resolves whether a trainee counts as having attended a session.
// When the session carries an explicit attendance record (even an empty one)
// that record is authoritative; until then, registration implies attendance.
func Attended(s models.TrainingSession, phone string) bool {
	if s.Attended != nil {
		return s.Attended.Contains(phone)
	}
	return s.Registered.Contains(phone)
}

// MonthlyCount counts the trainee's attended sessions in refMonth's calendar
// month.
func MonthlyCount(phone string, sessions []models.TrainingSession, refMonth time.Time) int {
	n := 0
	for _, s := range sessions {
		if s.Date.Year() != refMonth.Year() || s.Date.Month() != refMonth.Month() {
			continue
		}
		if Attended(s, phone) {
			n++
		}
	}
	return n
}

// Streak counts consecutive qualifying weeks (>= weeklyStreakMin attended
// sessions, Sunday-starting) walking backward from now's week. The current
// week may still be in progress, so falling short there does not break the
// streak; any earlier short week does. The walk stops at streakFloorYear.
func Streak(phone string, sessions []models.TrainingSession, now time.Time) int {
	counts := make(map[string]int)
	for _, s := range sessions {
		if Attended(s, phone) {
			counts[WeekStart(s.Date).Format("2006-01-02")]++
		}
	}

	streak := 0
	week := WeekStart(now)
	current := true
	for week.Year() >= streakFloorYear {
		if counts[week.Format("2006-01-02")] >= weeklyStreakMin {
			streak++
		} else if !current {
			break
		}
		current = false
		week = week.AddDate(0, 0, -7)
	}
	return streak
}
