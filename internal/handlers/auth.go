package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
	svc "github.com/eranlawcoil2-wq/NivCohen-sub000/internal/services"
)

const traineePhoneCookie = "trainee_phone"

func setTraineeCookie(w http.ResponseWriter, phone string) {
	http.SetCookie(w, &http.Cookie{
		Name:     traineePhoneCookie,
		Value:    phone,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func clearTraineeCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    traineePhoneCookie,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

// traineePhone reads the logged-in identity from the cookie.
func traineePhone(r *http.Request) string {
	if c, err := r.Cookie(traineePhoneCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// RequireTrainee guards trainee-only endpoints.
func RequireTrainee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if traineePhone(r) == "" {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// POST /api/login {"phone": "..."}
// Phone is the de facto credential: a known number logs in, an unknown one
// is rejected so the coach controls who gets an account.
func Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Phone string `json:"phone"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	phone := svc.NormPhone(in.Phone)
	if phone == "" {
		writeError(w, http.StatusBadRequest, "phone required")
		return
	}

	var user models.User
	if err := db.Conn().Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "unknown phone number")
			return
		}
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}

	setTraineeCookie(w, user.Phone)
	writeJSON(w, http.StatusOK, user)
}

// POST /api/logout
func Logout(w http.ResponseWriter, r *http.Request) {
	clearTraineeCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
