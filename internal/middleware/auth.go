package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/winterarc/tracker/internal/ctxkeys"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// BearerAuth requires a valid "Authorization: Bearer" token and stores its
// subject as the request's user id. Paths in public pass through untouched.
func BearerAuth(verifier TokenVerifier, public ...string) func(http.Handler) http.Handler {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if open[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := verifier.VerifyToken(strings.TrimSpace(token))
			if err != nil {
				slog.Warn("rejected bearer token",
					"request_id", ctxkeys.RequestID(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithUserID(r.Context(), userID)))
		})
	}
}
