// Package handlers provides HTTP request handlers
package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
	"github.com/smresponsibilities/flight-sun-tracker/internal/services"
)

// Flight duration bounds in minutes
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 1200
)

var iataPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Handler holds all service dependencies
type Handler struct {
	FlightService  *services.FlightService
	AirportService *services.AirportService
}

// NewHandler creates a new handler with services
func NewHandler(flight *services.FlightService, airport *services.AirportService) *Handler {
	return &Handler{
		FlightService:  flight,
		AirportService: airport,
	}
}

// Health handles health check requests
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Health{
		Status: "ok",
		Now:    time.Now().UTC(),
	})
}

// CalculateFlight handles flight-sun calculation requests
func (h *Handler) CalculateFlight(c *gin.Context) {
	var req domain.FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse("BAD_REQUEST", err.Error()))
		return
	}
	if msg := validateFlightRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse("VALIDATION", msg))
		return
	}

	rec, err := h.FlightService.Calculate(req)
	if err != nil {
		var notFound *domain.AirportNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse("AIRPORT_NOT_FOUND", notFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse("INTERNAL", "calculation failed"))
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse(rec))
}

// validateFlightRequest enforces the input contract and normalizes the IATA
// codes to uppercase. Returns an empty string when the request is valid.
func validateFlightRequest(req *domain.FlightRequest) string {
	if !iataPattern.MatchString(req.Departure) {
		return "departure must be a 3-letter IATA code"
	}
	if !iataPattern.MatchString(req.Arrival) {
		return "arrival must be a 3-letter IATA code"
	}
	req.Departure = strings.ToUpper(req.Departure)
	req.Arrival = strings.ToUpper(req.Arrival)

	if req.Departure == req.Arrival {
		return "departure and arrival must differ"
	}
	if req.DurationMinutes < MinDurationMinutes || req.DurationMinutes > MaxDurationMinutes {
		return "durationMinutes must be between 30 and 1200"
	}

	now := time.Now().UTC()
	t := req.DepartureTime.UTC()
	if t.Before(now.Add(-24*time.Hour)) || t.After(now.AddDate(1, 0, 0)) {
		return "departureTime must be within one day in the past and one year in the future"
	}
	return ""
}

// ListAirports handles airport dataset list requests
func (h *Handler) ListAirports(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SuccessResponse(map[string]interface{}{
		"airports": h.AirportService.List(),
	}))
}

// GetAirport handles single airport lookups
func (h *Handler) GetAirport(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	if !iataPattern.MatchString(code) {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse("VALIDATION", "code must be a 3-letter IATA code"))
		return
	}

	airport, ok := h.AirportService.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, domain.ErrorResponse("AIRPORT_NOT_FOUND", "airport not found: "+code))
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse(airport))
}

// SetupRoutes configures all routes
func SetupRoutes(r *gin.Engine, h *Handler) {
	// Health check
	r.GET("/health", h.Health)

	// Airport dataset endpoints
	r.GET("/airports", h.ListAirports)
	r.GET("/airports/:code", h.GetAirport)

	// Flight calculation endpoint
	r.POST("/api/flight/sun", h.CalculateFlight)
}
