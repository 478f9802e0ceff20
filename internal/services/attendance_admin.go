package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// AttendanceDraft is the coach's working set while recording who showed up.
// Output order follows the registration roster, with extras appended in the
// order they were ticked.
type AttendanceDraft struct {
	roster  models.PhoneList
	present map[string]bool
	extras  []string
}

// OpenAttendanceDraft seeds a draft from a session. A never-reported session
// (nil Attended) pre-checks the whole roster, so the coach only unticks
// no-shows. A reported session, even with an empty record, seeds exactly
// from that record.
func OpenAttendanceDraft(s models.TrainingSession) *AttendanceDraft {
	d := &AttendanceDraft{
		roster:  append(models.PhoneList{}, s.Registered...),
		present: make(map[string]bool),
	}
	if s.Attended == nil {
		for _, p := range s.Registered {
			d.present[p] = true
		}
		return d
	}
	for _, p := range *s.Attended {
		d.mark(p)
	}
	return d
}

// Toggle flips one phone's membership in the draft.
func (d *AttendanceDraft) Toggle(phone string) {
	phone = NormPhone(phone)
	if d.present[phone] {
		d.present[phone] = false
		return
	}
	d.mark(phone)
}

func (d *AttendanceDraft) mark(phone string) {
	if !d.present[phone] && !d.roster.Contains(phone) && !contains(d.extras, phone) {
		d.extras = append(d.extras, phone)
	}
	d.present[phone] = true
}

// Checked reports whether a phone is currently marked present.
func (d *AttendanceDraft) Checked(phone string) bool {
	return d.present[NormPhone(phone)]
}

// List returns the draft as an ordered attendance list.
func (d *AttendanceDraft) List() models.PhoneList {
	out := models.PhoneList{}
	for _, p := range d.roster {
		if d.present[p] {
			out = append(out, p)
		}
	}
	for _, p := range d.extras {
		if d.present[p] {
			out = append(out, p)
		}
	}
	return out
}

// CommitAttendance persists the draft as the session's authoritative
// attendance record. This is the only writer of that field; once written the
// session can no longer return to the unreported state.
func CommitAttendance(gdb *gorm.DB, sessionID uint, d *AttendanceDraft) (*models.TrainingSession, error) {
	var sess models.TrainingSession
	if err := gdb.First(&sess, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	list := d.List()
	sess.Attended = &list
	if err := gdb.Save(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
