package routes

import (
	"net/http"

	"github.com/winterarc/tracker/internal/app"
	"github.com/winterarc/tracker/internal/handler"
	"github.com/winterarc/tracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	habit := handler.NewHabitHandler(app.HabitService)
	mood := handler.NewMoodHandler(app.MoodService)
	journal := handler.NewJournalHandler(app.JournalService)
	analytics := handler.NewAnalyticsHandler(app.AnalyticsService)
	export := handler.NewExportHandler(app.ExportService)

	mux := http.NewServeMux()

	// Probes
	mux.HandleFunc("GET /healthz", health.Health)

	// Habits
	mux.HandleFunc("GET /habits", habit.List)
	mux.HandleFunc("POST /habits", habit.Create)
	mux.HandleFunc("PATCH /habits/{id}", habit.Update)
	mux.HandleFunc("DELETE /habits/{id}", habit.Delete)

	// Habit entries
	mux.HandleFunc("GET /habit-entries", habit.ListEntries)
	mux.HandleFunc("POST /habit-entries", habit.LogEntry)

	// Mood entries
	mux.HandleFunc("GET /mood-entries", mood.List)
	mux.HandleFunc("POST /mood-entries", mood.Upsert)
	mux.HandleFunc("PATCH /mood-entries/{id}", mood.Update)
	mux.HandleFunc("DELETE /mood-entries/{id}", mood.Delete)

	// Journal entries
	mux.HandleFunc("GET /journal-entries", journal.List)
	mux.HandleFunc("POST /journal-entries", journal.Upsert)
	mux.HandleFunc("GET /journal-entries/{id}/html", journal.HTML)
	mux.HandleFunc("PATCH /journal-entries/{id}", journal.Update)
	mux.HandleFunc("DELETE /journal-entries/{id}", journal.Delete)

	// Derived data
	mux.HandleFunc("GET /analytics", analytics.Analytics)
	mux.HandleFunc("GET /daily-progress", analytics.DailyProgress)
	mux.HandleFunc("GET /stats", analytics.Stats)
	mux.HandleFunc("GET /badges", analytics.Badges)

	// Exports
	mux.HandleFunc("POST /exports", export.Create)

	// Global middleware - executed in order (top to bottom)
	middlewares := []func(http.Handler) http.Handler{
		middleware.RequestLogging, // Assigns the request id used by everything below
		middleware.Recover,
	}
	if app.AuthService != nil {
		middlewares = append(middlewares, middleware.BearerAuth(app.AuthService, "/healthz"))
	}
	limiter := middleware.NewRateLimiter(app.Cfg.RateLimitRequests, app.Cfg.RateLimitWindow, app.Done())
	middlewares = append(middlewares, middleware.RateLimitWrites(limiter, app.Cfg.TrustProxyHeaders))

	return middleware.Chain(mux, middlewares...)
}
