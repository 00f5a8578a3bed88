package flight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smresponsibilities/flight-sun-tracker/internal/airports"
	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

func fixtureLookup() *airports.Store {
	return airports.NewStore([]domain.Airport{
		{IATA: "JFK", Name: "John F. Kennedy International Airport", Latitude: 40.6413, Longitude: -73.7781},
		{IATA: "LHR", Name: "London Heathrow Airport", Latitude: 51.4700, Longitude: -0.4543},
		{IATA: "BOS", Name: "Boston Logan International Airport", Latitude: 42.3656, Longitude: -71.0096},
	})
}

func TestCalculateTransatlantic(t *testing.T) {
	rec, err := Calculate(fixtureLookup(), domain.FlightRequest{
		Departure:       "JFK",
		Arrival:         "LHR",
		DepartureTime:   time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 420,
	})
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Len(t, rec.GlobeData.FlightPath, 85)
	assert.InDelta(t, 5540e3, rec.GlobeData.TotalDistance, 50e3)
	assert.Equal(t, 420, rec.GlobeData.TotalDuration)
	assert.Equal(t, "JFK", rec.GlobeData.Departure.IATA)
	assert.Equal(t, "LHR", rec.GlobeData.Arrival.IATA)

	assert.Contains(t, []string{domain.SideLeft, domain.SideRight, domain.SideEither}, rec.Recommendation)
	assert.Greater(t, rec.Confidence, 0)
	assert.LessOrEqual(t, rec.Confidence, 100)
	assert.NotEmpty(t, rec.Description)

	summary := rec.GlobeData.Summary
	assert.GreaterOrEqual(t, summary.AverageSunVisibility, 0.0)
	assert.LessOrEqual(t, summary.AverageSunVisibility, 100.0)
	assert.Equal(t, rec.Recommendation, summary.BestViewingSide)
	assert.Equal(t, len(rec.Events), summary.TotalSunriseEvents+summary.TotalSunsetEvents)

	assertNoSameTypeWithinWindow(t, rec.Events)
}

func TestCalculateNightFlight(t *testing.T) {
	// JFK to BOS around local midnight: the sun never clears the horizon.
	rec, err := Calculate(fixtureLookup(), domain.FlightRequest{
		Departure:       "JFK",
		Arrival:         "BOS",
		DepartureTime:   time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.Empty(t, rec.Events)
	assert.Zero(t, rec.GlobeData.Summary.AverageSunVisibility)
	assert.Equal(t, domain.SideEither, rec.Recommendation)
	assert.Equal(t, 50, rec.Confidence)
}

func TestCalculateUnknownAirport(t *testing.T) {
	cases := []struct {
		name      string
		departure string
		arrival   string
		wantCode  string
	}{
		{"unknown departure", "ZZZ", "LHR", "ZZZ"},
		{"unknown arrival", "JFK", "QQQ", "QQQ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Calculate(fixtureLookup(), domain.FlightRequest{
				Departure:       tc.departure,
				Arrival:         tc.arrival,
				DepartureTime:   time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
				DurationMinutes: 420,
			})
			require.Error(t, err)
			assert.Nil(t, rec)

			var notFound *domain.AirportNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tc.wantCode, notFound.Code)
			assert.Contains(t, err.Error(), tc.wantCode)
		})
	}
}

func TestCalculateSameAirport(t *testing.T) {
	// Equal codes are rejected upstream; invoked directly the calculator
	// still returns a valid zero-distance trajectory.
	rec, err := Calculate(fixtureLookup(), domain.FlightRequest{
		Departure:       "JFK",
		Arrival:         "JFK",
		DepartureTime:   time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.Zero(t, rec.GlobeData.TotalDistance)
	require.NotEmpty(t, rec.GlobeData.FlightPath)
	first := rec.GlobeData.FlightPath[0].Location
	for _, p := range rec.GlobeData.FlightPath {
		assert.Equal(t, first, p.Location)
	}
}
