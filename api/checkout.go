package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service checkout.CheckoutUseCase
}

type bookRequest struct {
	FlightID    int64  `json:"flight_id"`
	TravelClass string `json:"travel_class"`
}

type ticketResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	UserName    string `json:"user_name"`
	FlightID    int64  `json:"flight_id"`
	TravelClass string `json:"travel_class"`
	Price       int64  `json:"price"`
	CreatedAt   string `json:"created_at"`
}

func NewCheckoutHandler(service checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

func (h *CheckoutHandler) Register(router *gin.RouterGroup) {
	router.GET("/:flightId", h.quote)
	router.POST("/", h.book)
}

func (h *CheckoutHandler) RegisterTickets(router *gin.RouterGroup) {
	router.GET("/", h.listTickets)
}

func (h *CheckoutHandler) quote(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("flightId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), callerID(c), flightID)
	if err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *CheckoutHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.Book(c.Request.Context(), callerID(c), req.FlightID, domain.TravelClass(req.TravelClass))
	if err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ticketResponse{
		ID:          ticket.ID,
		Reference:   ticket.Reference,
		UserName:    ticket.UserName,
		FlightID:    ticket.FlightID,
		TravelClass: string(ticket.TravelClass),
		Price:       ticket.Price,
		CreatedAt:   ticket.CreatedAt.Format(time.RFC3339),
	})
}

func (h *CheckoutHandler) listTickets(c *gin.Context) {
	tickets, err := h.service.ListTickets(c.Request.Context(), callerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// checkoutStatus maps checkout failures to HTTP statuses. Every failure
// leaves the wallet and ticket history untouched, so callers can retry
// after correcting the condition.
func checkoutStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTravelClass):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrPurchaseConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
