package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/winterarc/tracker/internal/ctxkeys"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/validation"
)

var (
	errInvalidBody  = errors.New("request body must be valid JSON")
	errUserMismatch = errors.New("userId does not match the authenticated user")
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// fail answers err with its status: 400 for validation, 403 for a foreign
// userId, 404 for unknown ids and 500 otherwise. Store failures are logged
// with attrs and the wrapped error; the body carries the store's own message.
func fail(w http.ResponseWriter, r *http.Request, err error, msg string, attrs ...any) {
	switch {
	case validation.IsValidationError(err), errors.Is(err, errInvalidBody):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errUserMismatch):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrHabitNotFound),
		errors.Is(err, repository.ErrMoodEntryNotFound),
		errors.Is(err, repository.ErrJournalEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		attrs = append(attrs, "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		slog.Error(msg, attrs...)
		writeError(w, http.StatusInternalServerError, rootCause(err).Error())
	}
}

// rootCause follows single-error wrapping down to the innermost error.
func rootCause(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}

// decodeJSON reads the request body into v. Validation errors raised while
// decoding, such as an out-of-range level, are kept as they are.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}
	if validation.IsValidationError(err) {
		return err
	}
	return errInvalidBody
}

// resolveUserID returns the user id a request acts for. With a verified
// principal, an empty supplied id defaults to it and a different one is
// rejected. Without one, the supplied id is trusted.
func resolveUserID(r *http.Request, supplied string) (string, error) {
	principal := ctxkeys.UserID(r.Context())
	switch {
	case principal == "":
		return supplied, nil
	case supplied == "" || supplied == principal:
		return principal, nil
	default:
		return "", errUserMismatch
	}
}
