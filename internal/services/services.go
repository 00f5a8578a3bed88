// Package services provides business logic
package services

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/smresponsibilities/flight-sun-tracker/internal/airports"
	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
	"github.com/smresponsibilities/flight-sun-tracker/internal/flight"
)

// FlightService runs flight-sun calculations against the loaded airport
// dataset, memoizing results for repeated identical requests.
type FlightService struct {
	store *airports.Store
	cache *lru.Cache[string, *domain.FlightRecommendation]
}

// NewFlightService creates a new flight service
func NewFlightService(store *airports.Store, cacheSize int) *FlightService {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, _ := lru.New[string, *domain.FlightRecommendation](cacheSize)
	return &FlightService{store: store, cache: cache}
}

// Calculate computes the viewing-side recommendation for one flight. The
// result is immutable after construction, so cached values are shared
// between callers as-is.
func (s *FlightService) Calculate(req domain.FlightRequest) (*domain.FlightRecommendation, error) {
	key := cacheKey(req)
	if rec, ok := s.cache.Get(key); ok {
		return rec, nil
	}

	rec, err := flight.Calculate(s.store, req)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, rec)
	return rec, nil
}

func cacheKey(req domain.FlightRequest) string {
	return fmt.Sprintf("%s|%s|%d|%d",
		req.Departure, req.Arrival, req.DepartureTime.UTC().Unix(), req.DurationMinutes)
}

// AirportService exposes the loaded airport dataset
type AirportService struct {
	store *airports.Store
}

// NewAirportService creates a new airport service
func NewAirportService(store *airports.Store) *AirportService {
	return &AirportService{store: store}
}

// List returns the full dataset ordered by IATA code
func (s *AirportService) List() []domain.Airport {
	return s.store.All()
}

// Get looks up one airport by uppercase IATA code
func (s *AirportService) Get(code string) (domain.Airport, bool) {
	return s.store.Find(code)
}
