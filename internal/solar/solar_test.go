package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

var greenwich = domain.Coordinates{Lat: 51.4769, Lon: 0.0}

// Reference values from the NOAA solar calculator. This pins the compass
// azimuth convention (0 = north, clockwise): a flipped convention would put
// the morning sun in the southwest instead of the southeast and silently
// swap every left/right recommendation.
func TestPositionAgainstReferenceEphemeris(t *testing.T) {
	at := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	az, el := Position(at, greenwich)

	assert.InDelta(t, 126.0, az, 6.0)
	assert.InDelta(t, 25.0, el, 3.0)
}

func TestPositionSouthAtSolarNoon(t *testing.T) {
	// Solar noon at Greenwich on this date is about 12:07 UTC.
	at := time.Date(2024, 3, 20, 12, 7, 0, 0, time.UTC)
	az, el := Position(at, greenwich)

	assert.InDelta(t, 180.0, az, 3.0)
	assert.InDelta(t, 38.5, el, 2.0)
}

func TestPositionContinuityAcrossSunrise(t *testing.T) {
	rise, _ := Times(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), greenwich)
	require.False(t, rise.IsZero())

	// Elevation is near zero at the rise instant and increases monotonically
	// through it.
	_, elBefore := Position(rise.Add(-20*time.Minute), greenwich)
	_, elAt := Position(rise, greenwich)
	_, elAfter := Position(rise.Add(20*time.Minute), greenwich)

	assert.InDelta(t, 0, elAt, 2.0)
	assert.Less(t, elBefore, elAt)
	assert.Less(t, elAt, elAfter)
}

func TestTimesLondonSolstice(t *testing.T) {
	day := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	rise, set := Times(day, domain.Coordinates{Lat: 51.47, Lon: -0.45})

	require.False(t, rise.IsZero())
	require.False(t, set.IsZero())
	assert.WithinDuration(t, time.Date(2024, 6, 21, 3, 43, 0, 0, time.UTC), rise, 10*time.Minute)
	assert.WithinDuration(t, time.Date(2024, 6, 21, 20, 21, 0, 0, time.UTC), set, 10*time.Minute)
}

func TestTimesPolarSentinels(t *testing.T) {
	longyearbyen := domain.Coordinates{Lat: 78.2232, Lon: 15.6469}

	t.Run("midnight sun", func(t *testing.T) {
		rise, set := Times(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), longyearbyen)
		assert.True(t, rise.IsZero())
		assert.True(t, set.IsZero())
	})

	t.Run("polar night", func(t *testing.T) {
		rise, set := Times(time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC), longyearbyen)
		assert.True(t, rise.IsZero())
		assert.True(t, set.IsZero())
	})
}

func TestPositionAzimuthRange(t *testing.T) {
	locs := []domain.Coordinates{
		greenwich,
		{Lat: -33.94, Lon: 151.18},
		{Lat: 61.17, Lon: -149.99},
	}
	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, loc := range locs {
		for h := 0; h < 24; h += 3 {
			az, _ := Position(base.Add(time.Duration(h)*time.Hour), loc)
			assert.GreaterOrEqual(t, az, 0.0)
			assert.Less(t, az, 360.0)
		}
	}
}
