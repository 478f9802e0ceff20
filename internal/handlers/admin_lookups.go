package handlers

import (
	"net/http"
	"strings"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/db"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

// Lookup-table CRUD: locations, workout types, quotes. All follow the same
// list / add / update / delete shape over their collection.

// GET /api/locations (public, used for badge styling)
func ListLocations(w http.ResponseWriter, r *http.Request) {
	var locs []models.LocationDef
	if err := db.Conn().Order("name asc").Find(&locs).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

// POST /api/admin/locations
func AdminCreateLocation(w http.ResponseWriter, r *http.Request) {
	var in models.LocationDef
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = 0
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := db.Conn().Create(&in).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusCreated, in)
}

// PUT /api/admin/locations/{id}
func AdminUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var loc models.LocationDef
	if err := db.Conn().First(&loc, id).Error; err != nil {
		notFound(w, err)
		return
	}
	var in models.LocationDef
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	loc.Name, loc.Address, loc.Color = in.Name, in.Address, in.Color
	if err := db.Conn().Save(&loc).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// DELETE /api/admin/locations/{id}
func AdminDeleteLocation(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, &models.LocationDef{})
}

// GET /api/workout-types
func ListWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	var types []models.WorkoutType
	if err := db.Conn().Order("name asc").Find(&types).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// POST /api/admin/workout-types
func AdminCreateWorkoutType(w http.ResponseWriter, r *http.Request) {
	var in models.WorkoutType
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = 0
	if strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := db.Conn().Create(&in).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusCreated, in)
}

// DELETE /api/admin/workout-types/{id}
func AdminDeleteWorkoutType(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, &models.WorkoutType{})
}

// POST /api/admin/quotes
func AdminCreateQuote(w http.ResponseWriter, r *http.Request) {
	var in models.Quote
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.ID = 0
	if strings.TrimSpace(in.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if err := db.Conn().Create(&in).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	invalidateQuoteOfDay()
	writeJSON(w, http.StatusCreated, in)
}

// GET /api/admin/quotes
func AdminListQuotes(w http.ResponseWriter, r *http.Request) {
	var quotes []models.Quote
	if err := db.Conn().Order("id asc").Find(&quotes).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

// DELETE /api/admin/quotes/{id}
func AdminDeleteQuote(w http.ResponseWriter, r *http.Request) {
	invalidateQuoteOfDay()
	deleteByID(w, r, &models.Quote{})
}

// GetConfig returns the public subset of the app configuration.
func GetConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.AppConfig
	if err := db.Conn().First(&cfg, 1).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// PUT /api/admin/config
func AdminUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.AppConfig
	if err := db.Conn().First(&cfg, 1).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	var in struct {
		CoachNameHe   *string `json:"coachNameHe"`
		CoachNameEn   *string `json:"coachNameEn"`
		CoachPhone    *string `json:"coachPhone"`
		CoachEmail    *string `json:"coachEmail"`
		DefaultCity   *string `json:"defaultCity"`
		AdminPassword *string `json:"adminPassword"`
		UrgentMessage *string `json:"urgentMessage"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.CoachNameHe != nil {
		cfg.CoachNameHe = *in.CoachNameHe
	}
	if in.CoachNameEn != nil {
		cfg.CoachNameEn = *in.CoachNameEn
	}
	if in.CoachPhone != nil {
		cfg.CoachPhone = *in.CoachPhone
	}
	if in.CoachEmail != nil {
		cfg.CoachEmail = *in.CoachEmail
	}
	if in.DefaultCity != nil {
		cfg.DefaultCity = *in.DefaultCity
	}
	if in.AdminPassword != nil && *in.AdminPassword != "" {
		cfg.AdminPassword = *in.AdminPassword
	}
	if in.UrgentMessage != nil {
		cfg.UrgentMessage = *in.UrgentMessage
	}
	if err := db.Conn().Save(&cfg).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func deleteByID(w http.ResponseWriter, r *http.Request, model any) {
	id, ok := urlID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	res := db.Conn().Delete(model, id)
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
