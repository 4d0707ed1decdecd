package handler

import (
	"log/slog"
	"net/http"

	"github.com/winterarc/tracker/internal/model"
	"github.com/winterarc/tracker/internal/service"
)

type journalRequest struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// List returns the entry of ?date= (or null), otherwise all entries limited by
// ?startDate= and ?endDate= independently.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID, err := resolveUserID(r, query.Get("userId"))
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	if date := query.Get("date"); date != "" {
		entry, err := h.journalService.ForDate(r.Context(), userID, date)
		if err != nil {
			fail(w, r, err, "failed to get journal entry", "user_id", userID, "date", date)
			return
		}
		writeJSON(w, http.StatusOK, entry)
		return
	}

	entries, err := h.journalService.Entries(r.Context(), userID, model.DateRange{
		Start: query.Get("startDate"),
		End:   query.Get("endDate"),
	})
	if err != nil {
		fail(w, r, err, "failed to list journal entries", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *JournalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode journal entry")
		return
	}

	userID, err := resolveUserID(r, req.UserID)
	if err != nil {
		fail(w, r, err, "failed to resolve user")
		return
	}

	entry, err := h.journalService.Upsert(r.Context(), userID, req.Date, req.Content)
	if err != nil {
		fail(w, r, err, "failed to save journal entry", "user_id", userID, "date", req.Date)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	var req journalRequest
	if err := decodeJSON(r, &req); err != nil {
		fail(w, r, err, "failed to decode journal update")
		return
	}

	entry, err := h.journalService.Update(r.Context(), entryID, req.Content)
	if err != nil {
		fail(w, r, err, "failed to update journal entry", "entry_id", entryID)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	err := h.journalService.Delete(r.Context(), entryID)
	if err != nil {
		fail(w, r, err, "failed to delete journal entry", "entry_id", entryID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HTML serves the entry rendered from markdown.
func (h *JournalHandler) HTML(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	html, err := h.journalService.Render(r.Context(), entryID)
	if err != nil {
		fail(w, r, err, "failed to render journal entry", "entry_id", entryID)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(html)
	if err != nil {
		slog.Error("failed to write journal html", "error", err, "entry_id", entryID)
	}
}
