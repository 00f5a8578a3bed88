// Package solar computes the sun's horizontal position and rise/set times
// for an observer on the ground. Position accuracy is that of the meeus
// low-precision apparent solar coordinates, a small fraction of a degree,
// which is far below the sampling error of a 5-minute trajectory grid.
package solar

import (
	"math"
	"time"

	sunrise "github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// Position returns the sun's compass azimuth (degrees, 0 = north, 90 = east)
// and elevation above the horizon (degrees) at loc for the given UTC instant.
// The azimuth convention matches geo.Bearing so the two are directly
// comparable for viewing-side classification.
func Position(t time.Time, loc domain.Coordinates) (azimuthDeg, elevationDeg float64) {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)

	// Local hour angle from Greenwich apparent sidereal time.
	gst := sidereal.Apparent(jd).Angle().Rad()
	lonRad := loc.Lon * math.Pi / 180
	h := gst + lonRad - ra.Rad()

	latRad := loc.Lat * math.Pi / 180
	sinDec := dec.Sin()
	cosDec := dec.Cos()

	sinEl := math.Sin(latRad)*sinDec + math.Cos(latRad)*cosDec*math.Cos(h)
	elevationDeg = math.Asin(sinEl) * 180 / math.Pi

	// Meeus azimuth is measured from south, westward positive; shift to the
	// compass convention.
	az := math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(latRad)-(sinDec/cosDec)*math.Cos(latRad))
	azimuthDeg = math.Mod(az*180/math.Pi+180, 360)
	if azimuthDeg < 0 {
		azimuthDeg += 360
	}
	return azimuthDeg, elevationDeg
}

// Times returns the UTC sunrise and sunset instants for the calendar day of
// t (UTC) at loc. During polar day or polar night there is no horizon
// crossing and both instants are the zero time.Time; callers must treat a
// zero instant as "no event possible".
func Times(t time.Time, loc domain.Coordinates) (rise, set time.Time) {
	day := t.UTC()
	return sunrise.SunriseSunset(loc.Lat, loc.Lon, day.Year(), day.Month(), day.Day())
}
