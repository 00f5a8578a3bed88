package flight

import (
	"fmt"
	"strings"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// sideTally accumulates per-flight visibility and side counts.
type sideTally struct {
	visible int
	left    int
	right   int
}

func tallyPath(path []domain.FlightPathPoint) sideTally {
	var t sideTally
	for _, p := range path {
		if !p.SunPosition.Visible {
			continue
		}
		t.visible++
		switch p.ViewingSide {
		case domain.SideLeft:
			t.left++
		case domain.SideRight:
			t.right++
		}
	}
	return t
}

// Recommend reduces the deduplicated events and the per-sample tallies into
// a viewing-side recommendation with a confidence score and description.
//
// Policy, in priority order: discrete events win by majority side; with no
// events but some daylight, a side needs a 1.2x dominance of classified
// samples; otherwise the answer is "either" at baseline confidence.
func Recommend(events []domain.SunEvent, path []domain.FlightPathPoint) (side string, confidence int, description string) {
	if len(events) > 0 {
		return recommendFromEvents(events)
	}

	t := tallyPath(path)
	if t.visible == 0 {
		return domain.SideEither, 50, "No sunrise or sunset events during this flight, and the sun stays below the horizon."
	}

	classified := t.left + t.right
	dominant, dominantCount := domain.SideEither, 0
	switch {
	case float64(t.left) > float64(t.right)*1.2:
		dominant, dominantCount = domain.SideLeft, t.left
	case float64(t.right) > float64(t.left)*1.2:
		dominant, dominantCount = domain.SideRight, t.right
	}
	if dominant == domain.SideEither {
		return domain.SideEither, 50, "The sun is visible during the flight with no clear side advantage."
	}

	fraction := float64(dominantCount) / float64(classified)
	confidence = 50 + int(fraction*30)
	if confidence > 80 {
		confidence = 80
	}
	description = fmt.Sprintf("The sun stays mostly on the %s side of the aircraft.", dominant)
	return dominant, confidence, description
}

func recommendFromEvents(events []domain.SunEvent) (string, int, string) {
	var leftCount, rightCount int
	parts := make([]string, 0, len(events))
	for _, e := range events {
		switch e.ViewingSide {
		case domain.SideLeft:
			leftCount++
		case domain.SideRight:
			rightCount++
		}
		parts = append(parts, fmt.Sprintf("%s at %s UTC on the %s side",
			capitalize(e.Type), e.Time.UTC().Format("15:04"), e.ViewingSide))
	}
	description := strings.Join(parts, "; ") + "."

	if leftCount == rightCount {
		return domain.SideEither, 75, description
	}

	side, count := domain.SideLeft, leftCount
	if rightCount > leftCount {
		side, count = domain.SideRight, rightCount
	}
	confidence := 60 + count*15
	if confidence > 95 {
		confidence = 95
	}
	return side, confidence, description
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
