// Package flight implements the flight-sun geometry engine: trajectory
// sampling, sunrise/sunset event detection, and the viewing-side
// recommendation.
package flight

import (
	"math"
	"time"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
	"github.com/smresponsibilities/flight-sun-tracker/internal/geo"
	"github.com/smresponsibilities/flight-sun-tracker/internal/solar"
)

// SampleIntervalMinutes is the fixed spacing of trajectory samples.
const SampleIntervalMinutes = 5

// SamplePath walks the route from dep to arr in fixed 5-minute steps and
// returns the ordered trajectory plus the total great-circle distance in
// meters. The first point is always the departure (progress 0) and the last
// the arrival (progress 1).
func SamplePath(dep, arr domain.Coordinates, departureTime time.Time, durationMinutes int) ([]domain.FlightPathPoint, float64) {
	totalDistance := geo.Distance(dep, arr)
	bearing := geo.Bearing(dep, arr)

	sampleCount := int(math.Ceil(float64(durationMinutes) / SampleIntervalMinutes))
	path := make([]domain.FlightPathPoint, 0, sampleCount+1)

	for i := 0; i <= sampleCount; i++ {
		offsetMinutes := i * SampleIntervalMinutes
		if offsetMinutes > durationMinutes {
			offsetMinutes = durationMinutes
		}
		progress := float64(offsetMinutes) / float64(durationMinutes)

		pos := geo.Destination(dep, totalDistance*progress, bearing)
		t := departureTime.Add(time.Duration(offsetMinutes) * time.Minute)
		az, el := solar.Position(t, pos)

		point := domain.FlightPathPoint{
			Time:     t,
			Location: pos,
			Progress: progress,
			SunPosition: domain.SunPosition{
				AzimuthDegrees:   az,
				ElevationDegrees: el,
				Visible:          el > 0,
			},
			AircraftBearing: bearing,
		}
		if point.SunPosition.Visible {
			point.ViewingSide = ViewingSide(az, bearing)
		}
		path = append(path, point)
	}
	return path, totalDistance
}

// ViewingSide classifies which cabin side faces the sun: standing at the
// nose facing the bearing direction, azimuths swept clockwise by less than
// 180 degrees fall on the right, everything else (including dead ahead) on
// the left.
func ViewingSide(sunAzimuthDeg, bearingDeg float64) string {
	diff := math.Mod(sunAzimuthDeg-bearingDeg, 360)
	if diff < 0 {
		diff += 360
	}
	if diff > 0 && diff < 180 {
		return domain.SideRight
	}
	return domain.SideLeft
}
