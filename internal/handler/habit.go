package handler

import (
	"net/http"

	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

type createHabitRequest struct {
	UserID      string  `json:"userId"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateHabitRequest struct {
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type logEntryRequest struct {
	UserID    string  `json:"userId"`
	HabitID   string  `json:"habitId"`
	Date      string  `json:"date"`
	Completed *bool   `json:"completed"`
	Notes     *string `json:"notes"`
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	habits, err := h.habitService.Habits(r.Context(), userID)
	if err != nil {
		fail(w, r, err, "failed to list habits", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, habits)
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode habit")
		return
	}

	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	habit, err := h.habitService.Create(r.Context(), userID, req.Category, req.Title, req.Description)
	if err != nil {
		fail(w, r, err, "failed to create habit", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")

	var req updateHabitRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode habit update")
		return
	}

	habit, err := h.habitService.Update(r.Context(), habitID, model.HabitPatch{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		fail(w, r, err, "failed to update habit", "habit_id", habitID)
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")

	err := h.habitService.Delete(r.Context(), habitID)
	if err != nil {
		fail(w, r, err, "failed to delete habit", "habit_id", habitID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HabitHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := resolveUserID(r, query.Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	entries, err := h.habitService.Entries(r.Context(), model.HabitEntryFilter{
		UserID:  userID,
		HabitID: query.Get("habitId"),
		Date:    query.Get("date"),
	})
	if err != nil {
		fail(w, r, err, "failed to list habit entries", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *HabitHandler) LogEntry(w http.ResponseWriter, r *http.Request) {
	var req logEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode habit entry")
		return
	}

	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	entry, err := h.habitService.LogEntry(r.Context(), userID, req.HabitID, req.Date, req.Completed, req.Notes)
	if err != nil {
		fail(w, r, err, "failed to log habit entry", "user_id", userID, "habit_id", req.HabitID)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
