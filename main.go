package main

import (
	"log"
	"net/http"

	"dispo/config"
	"dispo/database"
	"dispo/handlers"
	"dispo/logging"
	"dispo/middleware"
	"dispo/scheduling"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	service := scheduling.NewService(database.GetDB(), logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, service, logger)
	calendarHandler := handlers.NewCalendarHandler(service, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(service, logger)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Post("/api/login", authHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/logout", authHandler.Logout)

		r.Get("/api/calendar-data", calendarHandler.CalendarData)
		r.Get("/api/plan-periods", calendarHandler.PlanPeriods)
		r.Get("/api/time-of-day-options", calendarHandler.TimeOfDayOptions)

		r.Post("/api/toggle", availabilityHandler.Toggle)
		r.Post("/api/save-notes", availabilityHandler.SaveNotes)
		r.Post("/api/load-period-notes", availabilityHandler.PeriodNotes)
		r.Get("/api/notes", availabilityHandler.Notes)
	})

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
