package handlers

import (
	"net/http"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

type attendanceRow struct {
	Phone    string `json:"phone"`
	FullName string `json:"fullName,omitempty"`
	Checked  bool   `json:"checked"`
}

// GET /api/admin/sessions/{id}/attendance
// Returns the seeded draft: a never-reported session pre-checks the full
// roster, a reported one mirrors its record exactly.
func AdminGetAttendance(w http.ResponseWriter, r *http.Request) {
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

	draft := svc.OpenAttendanceDraft(sess)

	// Resolve names for the roster; unknown phones still show up raw.
	names := make(map[string]string)
	if len(sess.Registered) > 0 {
		var users []models.User
		db.Conn().Where("phone IN ?", []string(sess.Registered)).Find(&users)
		for _, u := range users {
			names[u.Phone] = u.FullName
		}
	}

	rows := make([]attendanceRow, 0, len(sess.Registered))
	for _, p := range sess.Registered {
		rows = append(rows, attendanceRow{Phone: p, FullName: names[p], Checked: draft.Checked(p)})
	}
	// Walk-ins recorded off-roster show up after the roster rows.
	for _, p := range draft.List() {
		if !sess.Registered.Contains(p) {
			rows = append(rows, attendanceRow{Phone: p, Checked: true})
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": sess.ID,
		"reported":  sess.AttendanceReported(),
		"rows":      rows,
	})
}

// PUT /api/admin/sessions/{id}/attendance {"attended": [...]}
// Commits the draft as the authoritative record; this is the only writer of
// the attended list and permanently flips the session to reported.
func AdminPutAttendance(w http.ResponseWriter, r *http.Request) {
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
		Attended []string `json:"attended"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	// Rebuild a draft reflecting exactly the submitted set.
	empty := models.PhoneList{}
	seed := sess
	seed.Attended = &empty
	draft := svc.OpenAttendanceDraft(seed)
	for _, p := range in.Attended {
		if svc.NormPhone(p) != "" {
			draft.Toggle(p)
		}
	}

	updated, err := svc.CommitAttendance(db.Conn(), id, draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
