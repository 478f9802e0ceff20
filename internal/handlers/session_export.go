package handlers

import (
	"fmt"
	"net/http"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/calendar"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// SessionICS serves a one-session calendar download.
func SessionICS(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	var sess models.TrainingSession
	if err := db.Conn().First(&sess, id).Error; err != nil {
		notFound(w, err)
		return
	}

	start := sess.StartAt(tz)
	ics := calendar.GenerateICS(calendar.Event{
		UID:         fmt.Sprintf("session-%d@studio", sess.ID),
		Summary:     sess.Type,
		Description: sess.Description,
		Location:    sess.Location,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="session-%d.ics"`, sess.ID))
	_, _ = w.Write([]byte(ics))
}

// SessionQR renders a QR code linking to the session, for sharing in
// group chats. Scanning opens the schedule focused on the session's day.
func SessionQR(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var sess models.TrainingSession
	if err := db.Conn().First(&sess, id).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	url := "http://" + r.Host + "/api/schedule?date=" + sess.Date.Format("2006-01-02")
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
