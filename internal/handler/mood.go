package handler

import (
	"net/http"
	"strings"

	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/service"
	"github.com/winterarc/tracker/internal/validation"
)

// level is a mood, energy or focus level sent as "1".."5" or as a number.
type level struct {
	value int
	set   bool
}

func (l *level) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		return nil
	}

	n, err := validation.ParseLevel(strings.Trim(raw, `"`))
	if err != nil {
		return err
	}

	l.value, l.set = n, true
	return nil
}

func (l level) ptr() *int {
	if !l.set {
		return nil
	}
	return &l.value
}

type moodRequest struct {
	UserID string   `json:"userId"`
	Date   string   `json:"date"`
	Mood   level    `json:"mood"`
	Energy level    `json:"energy"`
	Focus  level    `json:"focus"`
	Sleep  *float64 `json:"sleep"`
	Notes  *string  `json:"notes"`
}

type MoodHandler struct {
	moodService *service.MoodService
}

func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// List returns the entry of ?date= (or null), otherwise all entries, limited
// to ?startDate=&endDate= when both are given.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := resolveUserID(r, query.Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	if date := query.Get("date"); date != "" {
		entry, err := h.moodService.ForDate(r.Context(), userID, date)
		if err != nil {
			fail(w, r, err, "failed to get mood entry", "user_id", userID, "date", date)
			return
		}
		writeJSON(w, http.StatusOK, entry)
		return
	}

	entries, err := h.moodService.Entries(r.Context(), userID, model.DateRange{
		Start: query.Get("startDate"),
		End:   query.Get("endDate"),
	})
	if err != nil {
		fail(w, r, err, "failed to list mood entries", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *MoodHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode mood entry")
		return
	}

	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	if err := validation.Required("userId", userID, "date", req.Date); err != nil {
		fail(w, r, err, "invalid mood entry")
		return
	}
	if err := validation.RequireLevels(req.Mood.set, req.Energy.set, req.Focus.set); err != nil {
		fail(w, r, err, "invalid mood entry")
		return
	}

	entry, err := h.moodService.Upsert(r.Context(), service.MoodInput{
		UserID: userID,
		Date:   req.Date,
		Mood:   req.Mood.value,
		Energy: req.Energy.value,
		Focus:  req.Focus.value,
		Sleep:  req.Sleep,
		Notes:  req.Notes,
	})
	if err != nil {
		fail(w, r, err, "failed to save mood entry", "user_id", userID, "date", req.Date)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	var req moodRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode mood update")
		return
	}

	entry, err := h.moodService.Update(r.Context(), entryID, model.MoodPatch{
		Mood:   req.Mood.ptr(),
		Energy: req.Energy.ptr(),
		Focus:  req.Focus.ptr(),
		Sleep:  req.Sleep,
		Notes:  req.Notes,
	})
	if err != nil {
		fail(w, r, err, "failed to update mood entry", "entry_id", entryID)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	err := h.moodService.Delete(r.Context(), entryID)
	if err != nil {
		fail(w, r, err, "failed to delete mood entry", "entry_id", entryID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
