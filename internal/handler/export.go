package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
	now           func() time.Time
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		now:           time.Now,
	}
}

// Create exports the user's data. With storage configured it answers 201 with
// the object key and a download URL; otherwise the export is the response body.
func (h *ExportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	now := h.now()
	result, err := h.exportService.Export(r.Context(), userID, now)
	if err != nil {
		fail(w, r, err, "failed to export data", "user_id", userID)
		return
	}

	if result.Data != nil {
		filename := fmt.Sprintf("winter-arc-export-%s.json", dates.Format(now))
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		writeJSON(w, http.StatusOK, result.Data)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
