// Package geo provides great-circle geodesy on a spherical Earth
package geo

import (
	"math"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius (spherical approximation)
const EarthRadiusMeters = 6371000.0

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// normalizeDeg normalizes an angle to [0, 360)
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Distance returns the great-circle distance in meters between two points
func Distance(a, b domain.Coordinates) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// Bearing returns the initial great-circle bearing from a to b in compass
// degrees (0 = north, 90 = east). The aircraft heading is held at this value
// for the whole flight; the varying true heading of the great circle is a
// deliberately ignored refinement.
func Bearing(a, b domain.Coordinates) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return normalizeDeg(radToDeg(math.Atan2(y, x)))
}

// Destination returns the point reached by traveling distanceMeters from
// origin along the great circle with the given initial bearing.
func Destination(origin domain.Coordinates, distanceMeters, bearingDeg float64) domain.Coordinates {
	if distanceMeters == 0 {
		return origin
	}

	delta := distanceMeters / EarthRadiusMeters
	theta := degToRad(bearingDeg)
	lat1 := degToRad(origin.Lat)
	lon1 := degToRad(origin.Lon)

	sinLat2 := math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)
	lat2 := math.Asin(sinLat2)
	lon2 := lon1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*sinLat2,
	)

	lon2Deg := math.Mod(radToDeg(lon2)+540, 360) - 180

	return domain.Coordinates{Lat: radToDeg(lat2), Lon: lon2Deg}
}
