package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/smarttransit-lk/agents-api/agents"
	"github.com/smarttransit-lk/agents-api/config"
	"github.com/smarttransit-lk/agents-api/handlers"
	"github.com/smarttransit-lk/agents-api/repository"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg := config.Load()

	// Route-network repository: Postgres when DATABASE_URL is set, SQLite
	// otherwise. Both seed the literal network rows on startup.
	var routeRepo agents.RouteNetworkRepository

	if cfg.DatabaseURL != "" {
		log.Println("Connecting to Postgres route-network store")
		pgRepo, err := repository.NewPostgresRouteNetworkRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize Postgres route store: %v", err)
		}
		defer pgRepo.Close()

		if err := pgRepo.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed route network: %v", err)
		}
		routeRepo = pgRepo
	} else {
		log.Printf("Connecting to SQLite route-network store: %s", cfg.SQLiteDatabase)
		if dir := filepath.Dir(cfg.SQLiteDatabase); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("Failed to create database directory: %v", err)
			}
		}

		sqliteDB, err := repository.NewSQLiteDB(cfg.SQLiteDatabase)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite database: %v", err)
		}
		defer sqliteDB.Close()

		sqliteRepo := repository.NewSQLiteRouteNetworkRepository(sqliteDB.GetDB())
		if err := sqliteRepo.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed route network: %v", err)
		}
		routeRepo = sqliteRepo
	}

	log.Println("Route network seeded")

	// Wire the four agents. Preferences live in memory for the process
	// lifetime.
	aggregator := agents.NewDataAggregationAgent(cfg.BackendHealthURL, cfg.BackendTimeout, routeRepo, cfg.NetworkCacheTTL)
	optimizer := agents.NewRouteOptimizationAgent()
	personalizer := agents.NewPersonalizationAgent(repository.NewMemoryPreferenceStore())
	translator := agents.NewLanguageAgent()

	journeyHandler := handlers.NewJourneyHandler(aggregator, optimizer, personalizer, translator)
	statusHandler := handlers.NewStatusHandler(aggregator, optimizer, personalizer, translator)
	networkHandler := handlers.NewNetworkHandler(aggregator)
	healthHandler := handlers.NewHealthHandler(routeRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", statusHandler.GetServiceBanner)
	r.Post("/api/plan-journey", journeyHandler.PlanJourney)
	r.Get("/api/agents/status", statusHandler.GetAgentsStatus)
	r.Get("/api/network", networkHandler.GetRouteNetwork)

	// Health check endpoint with route-store connectivity test
	r.Get("/health", healthHandler.GetHealth)

	// Legacy health check endpoint (kept for backwards compatibility)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Legacy ping endpoint
	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	log.Printf("Smart Transit agents API starting on :%s", cfg.Port)
	log.Println("Journey planning:")
	log.Println("  POST /api/plan-journey")
	log.Println("Agents:")
	log.Println("  GET /api/agents/status")
	log.Println("Network:")
	log.Println("  GET /api/network")
	log.Println("Health:")
	log.Println("  GET /health (with route-store check)")
	log.Printf("Backend health probe: %s (timeout %s)", cfg.BackendHealthURL, cfg.BackendTimeout)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
