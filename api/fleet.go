package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) Register(router *gin.RouterGroup) {
	router.POST("/airlines", h.createAirline)
	router.GET("/airlines", h.listAirlines)
	router.POST("/airports", h.createAirport)
	router.GET("/airports", h.listAirports)
	router.POST("/aircrafts", h.createAircraft)
	router.GET("/aircrafts", h.listAircraft)
	router.POST("/flights", h.scheduleFlight)
}

type createAirlineRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *FleetHandler) createAirline(c *gin.Context) {
	var req createAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airline := &domain.Airline{Name: req.Name, Code: req.Code}
	if err := h.service.CreateAirline(c.Request.Context(), airline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, airline)
}

func (h *FleetHandler) listAirlines(c *gin.Context) {
	airlines, err := h.service.ListAirlines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airlines)
}

type createAirportRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

func (h *FleetHandler) createAirport(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport := &domain.Airport{Code: req.Code, Name: req.Name, City: req.City}
	if err := h.service.CreateAirport(c.Request.Context(), airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *FleetHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airports)
}

type createAircraftRequest struct {
	AirlineID       int64  `json:"airline_id"`
	Model           string `json:"model"`
	EconomySeats    int    `json:"economy_seats"`
	BusinessSeats   int    `json:"business_seats"`
	FirstClassSeats int    `json:"firstclass_seats"`
	EconomyPrice    int64  `json:"economy_seat_price"`
	BusinessPrice   int64  `json:"business_seat_price"`
	FirstClassPrice int64  `json:"firstclass_seat_price"`
}

func (h *FleetHandler) createAircraft(c *gin.Context) {
	var req createAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aircraft := &domain.Aircraft{
		AirlineID:       req.AirlineID,
		Model:           req.Model,
		EconomySeats:    req.EconomySeats,
		BusinessSeats:   req.BusinessSeats,
		FirstClassSeats: req.FirstClassSeats,
		Fares: domain.FareTable{
			Economy:    req.EconomyPrice,
			Business:   req.BusinessPrice,
			FirstClass: req.FirstClassPrice,
		},
	}
	if err := h.service.CreateAircraft(c.Request.Context(), aircraft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, aircraft)
}

func (h *FleetHandler) listAircraft(c *gin.Context) {
	aircraft, err := h.service.ListAircraft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

type scheduleFlightRequest struct {
	FlightNumber       string `json:"flight_number"`
	AircraftID         int64  `json:"aircraft_id"`
	DepartureAirportID int64  `json:"departure_airport_id"`
	ArrivalAirportID   int64  `json:"arrival_airport_id"`
	DepartureTime      string `json:"departure_time"`
	DurationMinutes    int    `json:"duration_minutes"`
}

func (h *FleetHandler) scheduleFlight(c *gin.Context) {
	var req scheduleFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_time"})
		return
	}

	flight := &domain.Flight{
		FlightNumber:     req.FlightNumber,
		AircraftID:       req.AircraftID,
		DepartureAirport: domain.Airport{ID: req.DepartureAirportID},
		ArrivalAirport:   domain.Airport{ID: req.ArrivalAirportID},
		DepartureTime:    departure,
		DurationMinutes:  req.DurationMinutes,
	}
	if err := h.service.ScheduleFlight(c.Request.Context(), flight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, flight)
}
