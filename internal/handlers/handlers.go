// Package handlers implements the JSON API surface.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/clients/ai"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/clients/weather"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/config"
)

// Package-level wiring set once from main before the router starts.
var (
	appCfg        *config.Config
	weatherCache  *weather.Cache
	weatherClient *weather.Client
	aiClient      *ai.Client
	tz            *time.Location = time.UTC
)

// Init wires the handler package to its collaborators.
func Init(cfg *config.Config, wc *weather.Cache, wcl *weather.Client, groq *ai.Client) {
	appCfg = cfg
	weatherCache = wc
	weatherClient = wcl
	aiClient = groq
	tz = cfg.Location()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
