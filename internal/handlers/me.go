package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

func currentUser(r *http.Request) (*models.User, error) {
	phone := traineePhone(r)
	if phone == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := db.Conn().Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the profile plus the derived monthly count and streak.
func Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	now := time.Now().In(tz)
	floor := time.Date(2023, time.January, 1, 0, 0, 0, 0, tz)
	var sessions []models.TrainingSession
	if err := db.Conn().Where("date >= ?", floor).Find(&sessions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}

	monthly := svc.MonthlyCount(user.Phone, sessions, now)
	writeJSON(w, http.StatusOK, map[string]any{
		"user":         user,
		"monthlyCount": monthly,
		"streak":       svc.Streak(user.Phone, sessions, now),
		"bestMonthly":  user.BestMonthlyCount,
	})
}

// UpdateMe is the self-service profile edit. Phone stays fixed; changing the
// identity key is the coach's call.
func UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	var in struct {
		FullName    *string `json:"fullName"`
		DisplayName *string `json:"displayName"`
		Email       *string `json:"email"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.FullName != nil {
		if strings.TrimSpace(*in.FullName) == "" {
			writeError(w, http.StatusBadRequest, "full name required")
			return
		}
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*in.DisplayName)
	}
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}

	if err := db.Conn().Save(user).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SignWaiver signs the health declaration. Signing stamps the
// declaration time and a signature token; an optional scanned form is kept
// inline on the record.
func SignWaiver(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	var in struct {
		FullName string `json:"fullName"`
		FileName string `json:"fileName"`
		FileData string `json:"fileData"` // data URL
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if strings.TrimSpace(in.FullName) == "" {
		writeError(w, http.StatusBadRequest, "full name required to sign")
		return
	}

	now := time.Now().In(tz)
	user.FullName = strings.TrimSpace(in.FullName)
	user.HealthDeclarationAt = &now
	user.HealthDeclarationID = uuid.NewString()
	user.HealthFileName = in.FileName
	user.HealthFileData = in.FileData

	if err := db.Conn().Save(user).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"healthDeclarationAt": user.HealthDeclarationAt,
		"healthDeclarationId": user.HealthDeclarationID,
	})
}

// notFound maps gorm.ErrRecordNotFound to a 404, everything else to 500.
func notFound(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "db error")
}
