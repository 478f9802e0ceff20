package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

func urlID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GET /api/admin/users
func AdminListUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := db.Conn().Order("full_name asc").Find(&users).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// POST /api/admin/users
func AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.User
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = 0
	in.Phone = svc.NormPhone(in.Phone)
	if strings.TrimSpace(in.FullName) == "" || in.Phone == "" {
		writeError(w, http.StatusBadRequest, "full name and phone are required")
		return
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.PaymentPending
	}
	if in.JoinDate.IsZero() {
		in.JoinDate = time.Now().In(tz)
	}

	// Normalized phone is the identity key and must stay unique.
	var count int64
	db.Conn().Model(&models.User{}).Where("phone = ?", in.Phone).Count(&count)
	if count > 0 {
		writeError(w, http.StatusConflict, "phone already registered")
		return
	}

	if err := db.Conn().Create(&in).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusCreated, in)
}

// PUT /api/admin/users/{id}
func AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var user models.User
	if err := db.Conn().First(&user, id).Error; err != nil {
		notFound(w, err)
		return
	}

	var in models.User
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = user.ID
	in.CreatedAt = user.CreatedAt
	in.Phone = svc.NormPhone(in.Phone)
	if in.Phone == "" {
		in.Phone = user.Phone
	}
	if in.Phone != user.Phone {
		var count int64
		db.Conn().Model(&models.User{}).Where("phone = ? AND id <> ?", in.Phone, user.ID).Count(&count)
		if count > 0 {
			writeError(w, http.StatusConflict, "phone already registered")
			return
		}
	}
	// Waiver fields are written only by the signing flow.
	in.HealthDeclarationAt = user.HealthDeclarationAt
	in.HealthDeclarationID = user.HealthDeclarationID
	in.HealthFileName = user.HealthFileName
	in.HealthFileData = user.HealthFileData

	if err := db.Conn().Save(&in).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, in)
}

// DELETE /api/admin/users/{id}
func AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	res := db.Conn().Delete(&models.User{}, id)
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
