package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/winterarc/tracker/internal/config"
	"github.com/winterarc/tracker/internal/db"
	"github.com/winterarc/tracker/internal/markdown"
	"github.com/winterarc/tracker/internal/repository"
	"github.com/winterarc/tracker/internal/service"
	"github.com/winterarc/tracker/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService // nil when token verification is off
	HabitService     *service.HabitService
	MoodService      *service.MoodService
	JournalService   *service.JournalService
	AnalyticsService *service.AnalyticsService
	ExportService    *service.ExportService

	done chan struct{}
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	habitRepository := repository.NewHabitRepository(database)
	habitEntryRepository := repository.NewHabitEntryRepository(database)
	moodEntryRepository := repository.NewMoodEntryRepository(database)
	journalEntryRepository := repository.NewJournalEntryRepository(database)

	// Storage
	exportStorage, err := storage.New(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	var authService *service.AuthService
	if cfg.AuthEnabled() {
		authService = service.NewAuthService(cfg.AuthJWTSecret, cfg.AuthJWTIssuer, cfg.AuthJWTExpiry)
	}

	habitService := service.NewHabitService(habitRepository, habitEntryRepository)
	moodService := service.NewMoodService(moodEntryRepository)
	journalService := service.NewJournalService(journalEntryRepository, markdown.NewParser())
	analyticsService := service.NewAnalyticsService(
		habitRepository,
		habitEntryRepository,
		moodEntryRepository,
		journalEntryRepository,
		cfg.AnalyticsConcurrency,
	)
	exportService := service.NewExportService(
		habitRepository,
		habitEntryRepository,
		moodEntryRepository,
		journalEntryRepository,
		exportStorage,
		cfg.ExportKeyPrefix,
	)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		HabitService:     habitService,
		MoodService:      moodService,
		JournalService:   journalService,
		AnalyticsService: analyticsService,
		ExportService:    exportService,
		done:             make(chan struct{}),
	}, nil
}

// Done is closed when the app shuts down.
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) Close() error {
	select {
	case <-a.done:
	default:
		close(a.done)
	}

	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
