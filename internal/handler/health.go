package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/db"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(database *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: database}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := db.Ping(r.Context(), h.db)
	if err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
