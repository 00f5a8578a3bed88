// Main entry point for the flight sun tracker service
package main

import (
	"context"
	"log"

	"github.com/smresponsibilities/flight-sun-tracker/internal/airports"
	"github.com/smresponsibilities/flight-sun-tracker/internal/clients"
	"github.com/smresponsibilities/flight-sun-tracker/internal/config"
	"github.com/smresponsibilities/flight-sun-tracker/internal/handlers"
	"github.com/smresponsibilities/flight-sun-tracker/internal/repo"
	"github.com/smresponsibilities/flight-sun-tracker/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// Build the airport lookup table once; it is shared read-only across
	// all requests.
	store, err := loadAirports(cfg)
	if err != nil {
		log.Fatalf("Failed to load airport dataset: %v", err)
	}
	log.Printf("Airport dataset loaded (%d records)", store.Len())

	// Initialize services
	flightService := services.NewFlightService(store, cfg.CacheSize)
	airportService := services.NewAirportService(store)

	// Setup HTTP server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	// Setup routes
	handler := handlers.NewHandler(flightService, airportService)
	handlers.SetupRoutes(r, handler)

	// Start server
	log.Printf("flight-sun-tracker service listening on 0.0.0.0:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadAirports builds the IATA lookup table from the configured source:
// Postgres when DATABASE_URL is set, a remote dataset when AIRPORTS_URL is
// set, otherwise the embedded reference dataset is used.
func loadAirports(cfg *config.AppConfig) (*airports.Store, error) {
	if cfg.DatabaseURL != "" {
		return loadAirportsFromDB(cfg.DatabaseURL)
	}

	if cfg.AirportsURL != "" {
		client := clients.NewAirportsClient(cfg.AirportsURL)
		list, err := client.FetchDataset()
		if err != nil {
			log.Printf("Remote airport dataset unavailable (%v), falling back to embedded", err)
		} else {
			log.Printf("Airport dataset fetched from %s", client.BaseURL())
			return airports.NewStore(list), nil
		}
	}

	list, err := airports.Embedded()
	if err != nil {
		return nil, err
	}
	return airports.NewStore(list), nil
}

func loadAirportsFromDB(databaseURL string) (*airports.Store, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	// The table is read once at startup; the pool is not needed afterwards.
	defer pool.Close()

	if err := repo.InitDB(ctx, pool); err != nil {
		return nil, err
	}
	log.Println("Database schema initialized")

	airportRepo := repo.NewAirportRepo(pool)
	count, err := airportRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		embedded, err := airports.Embedded()
		if err != nil {
			return nil, err
		}
		if err := airportRepo.Seed(ctx, embedded); err != nil {
			return nil, err
		}
		log.Printf("Seeded airports table with %d embedded records", len(embedded))
	}

	list, err := airportRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return airports.NewStore(list), nil
}
