package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ampinho/churrasplit/docs"
	"github.com/ampinho/churrasplit/internal/barbecue"
	"github.com/ampinho/churrasplit/internal/config"
	"github.com/ampinho/churrasplit/internal/database"
	"github.com/ampinho/churrasplit/internal/importer"
	"github.com/ampinho/churrasplit/internal/participant"
	"github.com/ampinho/churrasplit/internal/payment"
	"github.com/ampinho/churrasplit/pkg/logging"
	mw "github.com/ampinho/churrasplit/pkg/middleware"
)

// @title        Churrasplit API
// @version      1.0
// @description  Shared-expense tracking and settlement for barbecue events.
// @BasePath     /api/v1
func main() {
	logging.Setup()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	// Participant feature
	participantRepo := participant.NewRepository(db)
	participantService := participant.NewService(participantRepo)
	participantHandler := participant.NewHandler(participantService)

	// Barbecue feature (products + ledger recomputation)
	barbecueRepo := barbecue.NewRepository(db)
	barbecueService := barbecue.NewService(barbecueRepo, participantRepo)
	barbecueHandler := barbecue.NewHandler(barbecueService)

	// Payment feature (shares the product store)
	paymentService := payment.NewService(barbecueRepo, barbecueService)
	paymentHandler := payment.NewHandler(paymentService)

	// Legacy sheet importer
	importerService := importer.NewService(barbecueRepo, barbecueService)
	importerHandler := importer.NewHandler(importerService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.ActorMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Actor"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/barbecues", barbecueHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
		r.Mount("/participants", participantHandler.Routes())
		r.Mount("/import", importerHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
