package flight

import (
	"time"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
	"github.com/smresponsibilities/flight-sun-tracker/internal/solar"
)

const (
	// eventWindow is how close a sample must be to the local rise/set
	// instant to count as witnessing it.
	eventWindow = 15 * time.Minute

	// dedupWindow collapses the 2-4 raw hits a single real sunrise or
	// sunset produces on a 5-minute sampling grid.
	dedupWindow = 10 * time.Minute

	// twilightFloorDeg admits samples slightly below the horizon so the
	// visually meaningful part of the crossing is not clipped.
	twilightFloorDeg = -5.0
)

// DetectEvents scans the trajectory for sunrise/sunset encounters and
// returns them deduplicated in scan order.
func DetectEvents(path []domain.FlightPathPoint) []domain.SunEvent {
	var raw []domain.SunEvent
	for _, p := range path {
		if p.SunPosition.ElevationDegrees <= twilightFloorDeg {
			continue
		}
		rise, set := solar.Times(p.Time, p.Location)
		// Zero instants mean polar day/night: no crossing at this sample.
		if !rise.IsZero() && absDuration(p.Time.Sub(rise)) < eventWindow {
			raw = append(raw, eventAt(domain.EventSunrise, p))
		}
		if !set.IsZero() && absDuration(p.Time.Sub(set)) < eventWindow {
			raw = append(raw, eventAt(domain.EventSunset, p))
		}
	}
	return dedupeEvents(raw)
}

func eventAt(eventType string, p domain.FlightPathPoint) domain.SunEvent {
	return domain.SunEvent{
		Type:            eventType,
		Time:            p.Time,
		Location:        p.Location,
		SunAzimuth:      p.SunPosition.AzimuthDegrees,
		AircraftBearing: p.AircraftBearing,
		ViewingSide:     ViewingSide(p.SunPosition.AzimuthDegrees, p.AircraftBearing),
		Elevation:       p.SunPosition.ElevationDegrees,
	}
}

// dedupeEvents keeps the first event of each cluster: a later event of the
// same type within dedupWindow of an already kept one is discarded.
func dedupeEvents(raw []domain.SunEvent) []domain.SunEvent {
	var kept []domain.SunEvent
	for _, e := range raw {
		duplicate := false
		for _, k := range kept {
			if k.Type == e.Type && absDuration(e.Time.Sub(k.Time)) < dedupWindow {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, e)
		}
	}
	return kept
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
