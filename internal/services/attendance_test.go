package services

import (
	"testing"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

const phone = "0501234567"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sessionOn(d time.Time, attended *models.PhoneList) models.TrainingSession {
	return models.TrainingSession{
		Date:       d,
		Registered: models.PhoneList{phone},
		Attended:   attended,
	}
}

// TestMonthlyCount_TriState verifies the attendance resolution rule: with no
// attendance record a registered trainee is assumed attended; once an empty
// record is persisted the same trainee no longer counts.
func TestMonthlyCount_TriState(t *testing.T) {
	ref := day(2025, time.March, 15)

	unreported := sessionOn(day(2025, time.March, 3), nil)
	if got := MonthlyCount(phone, []models.TrainingSession{unreported}, ref); got != 1 {
		t.Errorf("unreported session: MonthlyCount = %d, want 1", got)
	}

	empty := models.PhoneList{}
	reportedEmpty := sessionOn(day(2025, time.March, 3), &empty)
	if got := MonthlyCount(phone, []models.TrainingSession{reportedEmpty}, ref); got != 0 {
		t.Errorf("explicitly empty attendance: MonthlyCount = %d, want 0", got)
	}

	list := models.PhoneList{phone}
	reported := sessionOn(day(2025, time.March, 3), &list)
	if got := MonthlyCount(phone, []models.TrainingSession{reported}, ref); got != 1 {
		t.Errorf("reported attendance: MonthlyCount = %d, want 1", got)
	}
}

func TestMonthlyCount_OtherMonthIgnored(t *testing.T) {
	sessions := []models.TrainingSession{
		sessionOn(day(2025, time.February, 27), nil),
		sessionOn(day(2025, time.March, 2), nil),
	}
	if got := MonthlyCount(phone, sessions, day(2025, time.March, 10)); got != 1 {
		t.Errorf("MonthlyCount = %d, want 1", got)
	}
}

// TestStreak_CurrentWeekInProgress: weeks W, W-1 and W-2 each have 3 attended
// sessions, W-3 has only one. Evaluated mid-W the streak is 3 and the old
// short week terminates the walk.
func TestStreak_CurrentWeekInProgress(t *testing.T) {
	// Sunday 2025-03-02 starts week W-3; W starts Sunday 2025-03-23.
	var sessions []models.TrainingSession
	for _, sun := range []time.Time{
		day(2025, time.March, 23), // W
		day(2025, time.March, 16), // W-1
		day(2025, time.March, 9),  // W-2
	} {
		for i := 0; i < 3; i++ {
			sessions = append(sessions, sessionOn(sun.AddDate(0, 0, i), nil))
		}
	}
	sessions = append(sessions, sessionOn(day(2025, time.March, 3), nil)) // W-3, one only

	now := day(2025, time.March, 26) // Wednesday of week W
	if got := Streak(phone, sessions, now); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

// TestStreak_ShortCurrentWeekNotABreak: an in-progress week below the
// threshold is skipped, not counted as a break.
func TestStreak_ShortCurrentWeekNotABreak(t *testing.T) {
	var sessions []models.TrainingSession
	sessions = append(sessions, sessionOn(day(2025, time.March, 24), nil)) // week W, 1 session
	for i := 0; i < 3; i++ {
		sessions = append(sessions, sessionOn(day(2025, time.March, 16+i), nil)) // W-1
	}
	now := day(2025, time.March, 26)
	if got := Streak(phone, sessions, now); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreak_NoAttendance(t *testing.T) {
	if got := Streak(phone, nil, day(2025, time.March, 26)); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestAttended_ExplicitRecordWins(t *testing.T) {
	other := models.PhoneList{"0509999999"}
	s := models.TrainingSession{
		Registered: models.PhoneList{phone},
		Attended:   &other,
	}
	if Attended(s, phone) {
		t.Error("registered trainee counted attended despite explicit record excluding them")
	}
	if !Attended(s, "0509999999") {
		t.Error("trainee in explicit record not counted attended")
	}
}
