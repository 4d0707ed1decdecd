package handler

import (
	"net/http"
	"time"

	"github.com/winterarc/tracker/internal/dates"
	"github.com/winterarc/tracker/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	now              func() time.Time
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// dateParam returns ?date=, defaulting to today.
func dateParam(r *http.Request, now time.Time) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return dates.Format(now)
}

func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	data, err := h.analyticsService.Analytics(r.Context(), userID, h.now())
	if err != nil {
		fail(w, r, err, "failed to compute analytics", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (h *AnalyticsHandler) DailyProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	date := dateParam(r, h.now())
	progress, err := h.analyticsService.DailyProgress(r.Context(), userID, date)
	if err != nil {
		fail(w, r, err, "failed to compute daily progress", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	now := h.now()
	date := dateParam(r, now)
	stats, err := h.analyticsService.Stats(r.Context(), userID, date, now)
	if err != nil {
		fail(w, r, err, "failed to compute stats", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Badges(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	badges, err := h.analyticsService.Badges(r.Context(), userID, h.now())
	if err != nil {
		fail(w, r, err, "failed to evaluate badges", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, badges)
}
