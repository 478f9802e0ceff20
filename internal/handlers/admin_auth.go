package handlers

import (
	"net/http"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

const adminCookieName = "admin_session"

// adminPassword prefers the password stored on the AppConfig row and falls
// back to the configured default when unset.
func adminPassword() string {
	var cfg models.AppConfig
	if err := db.Conn().First(&cfg, 1).Error; err == nil && cfg.AdminPassword != "" {
		return cfg.AdminPassword
	}
	if appCfg != nil {
		return appCfg.AdminPasswordFallback
	}
	return "admin123"
}

// isAdmin reports whether the request carries a valid admin session.
func isAdmin(r *http.Request) bool {
	c, err := r.Cookie(adminCookieName)
	return err == nil && c.Value == "ok"
}

// RequireAdmin guards the admin API group.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			writeError(w, http.StatusUnauthorized, "admin login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// POST /api/admin/login {"password": "..."}
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.Password != adminPassword() {
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "ok",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/admin/logout
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
