// Package domain provides domain models for the application
package domain

import (
	"fmt"
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Airport is one record of the IATA reference dataset
type Airport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates returns the airport position as a Coordinates value
func (a Airport) Coordinates() Coordinates {
	return Coordinates{Lat: a.Latitude, Lon: a.Longitude}
}

// FlightRequest is the calculation input contract
type FlightRequest struct {
	Departure       string    `json:"departure" binding:"required"`
	Arrival         string    `json:"arrival" binding:"required"`
	DepartureTime   time.Time `json:"departureTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required"`
}

// SunPosition is the sun's horizontal coordinates at one sample
type SunPosition struct {
	AzimuthDegrees   float64 `json:"azimuthDegrees"`
	ElevationDegrees float64 `json:"elevationDegrees"`
	Visible          bool    `json:"visible"`
}

// FlightPathPoint is one sample along the flight trajectory
type FlightPathPoint struct {
	Time            time.Time   `json:"time"`
	Location        Coordinates `json:"location"`
	Progress        float64     `json:"progress"`
	SunPosition     SunPosition `json:"sunPosition"`
	AircraftBearing float64     `json:"aircraftBearing"`
	ViewingSide     string      `json:"viewingSide,omitempty"`
}

// Sun event types
const (
	EventSunrise = "sunrise"
	EventSunset  = "sunset"
)

// Viewing sides
const (
	SideLeft   = "left"
	SideRight  = "right"
	SideEither = "either"
)

// SunEvent is a sunrise or sunset encountered along the route
type SunEvent struct {
	Type            string      `json:"type"`
	Time            time.Time   `json:"time"`
	Location        Coordinates `json:"location"`
	SunAzimuth      float64     `json:"sunAzimuth"`
	AircraftBearing float64     `json:"aircraftBearing"`
	ViewingSide     string      `json:"viewingSide"`
	Elevation       float64     `json:"elevation"`
}

// FlightSummary aggregates per-flight sun statistics
type FlightSummary struct {
	TotalSunriseEvents   int     `json:"totalSunriseEvents"`
	TotalSunsetEvents    int     `json:"totalSunsetEvents"`
	AverageSunVisibility float64 `json:"averageSunVisibility"`
	BestViewingSide      string  `json:"bestViewingSide"`
}

// GlobeData carries everything the globe visualization needs
type GlobeData struct {
	Departure     Airport           `json:"departure"`
	Arrival       Airport           `json:"arrival"`
	FlightPath    []FlightPathPoint `json:"flightPath"`
	TotalDistance float64           `json:"totalDistance"`
	TotalDuration int               `json:"totalDuration"`
	Summary       FlightSummary     `json:"summary"`
}

// FlightRecommendation is the calculation output contract
type FlightRecommendation struct {
	Recommendation string     `json:"recommendation"`
	Confidence     int        `json:"confidence"`
	Description    string     `json:"description"`
	Events         []SunEvent `json:"events"`
	GlobeData      GlobeData  `json:"globeData"`
}

// AirportNotFoundError signals an IATA code with no dataset record
type AirportNotFoundError struct {
	Code string
}

func (e *AirportNotFoundError) Error() string {
	return fmt.Sprintf("airport not found: %s", e.Code)
}

// Health represents health check response
type Health struct {
	Status string    `json:"status"`
	Now    time.Time `json:"now"`
}

// ApiResponse wraps API responses
type ApiResponse struct {
	Ok    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ApiError   `json:"error,omitempty"`
}

// ApiError represents an error response
type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse creates a successful response
func SuccessResponse(data interface{}) ApiResponse {
	return ApiResponse{Ok: true, Data: data}
}

// ErrorResponse creates an error response
func ErrorResponse(code, message string) ApiResponse {
	return ApiResponse{Ok: false, Error: &ApiError{Code: code, Message: message}}
}
