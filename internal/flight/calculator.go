package flight

import (
	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// AirportLookup resolves an uppercase IATA code to its airport record.
type AirportLookup interface {
	Find(code string) (domain.Airport, bool)
}

// Calculate runs the full pipeline for one flight: resolve airports, sample
// the trajectory, detect sunrise/sunset events, and aggregate the
// recommendation. An unresolvable code returns *domain.AirportNotFoundError;
// any structurally valid input otherwise always produces a result.
func Calculate(lookup AirportLookup, req domain.FlightRequest) (*domain.FlightRecommendation, error) {
	dep, ok := lookup.Find(req.Departure)
	if !ok {
		return nil, &domain.AirportNotFoundError{Code: req.Departure}
	}
	arr, ok := lookup.Find(req.Arrival)
	if !ok {
		return nil, &domain.AirportNotFoundError{Code: req.Arrival}
	}

	path, totalDistance := SamplePath(dep.Coordinates(), arr.Coordinates(), req.DepartureTime.UTC(), req.DurationMinutes)
	events := DetectEvents(path)
	side, confidence, description := Recommend(events, path)

	sunrises, sunsets := 0, 0
	for _, e := range events {
		if e.Type == domain.EventSunrise {
			sunrises++
		} else {
			sunsets++
		}
	}
	visibility := float64(tallyPath(path).visible) / float64(len(path)) * 100

	return &domain.FlightRecommendation{
		Recommendation: side,
		Confidence:     confidence,
		Description:    description,
		Events:         events,
		GlobeData: domain.GlobeData{
			Departure:     dep,
			Arrival:       arr,
			FlightPath:    path,
			TotalDistance: totalDistance,
			TotalDuration: req.DurationMinutes,
			Summary: domain.FlightSummary{
				TotalSunriseEvents:   sunrises,
				TotalSunsetEvents:    sunsets,
				AverageSunVisibility: visibility,
				BestViewingSide:      side,
			},
		},
	}, nil
}
