package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/service/checkout"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) Quote(ctx context.Context, userID, flightID int64) (*checkout.Quote, error) {
	args := m.Called(ctx, userID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Quote), args.Error(1)
}

func (m *MockCheckoutUseCase) Book(ctx context.Context, userID, flightID int64, class domain.TravelClass) (*domain.Ticket, error) {
	args := m.Called(ctx, userID, flightID, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockCheckoutUseCase) ListTickets(ctx context.Context, userID int64) ([]domain.TicketWithFlight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TicketWithFlight), args.Error(1)
}

func TestCheckoutHandler_quote(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	handler := NewCheckoutHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "flightId", Value: "4"}}
	c.Request = httptest.NewRequest("GET", "/checkout/4", nil)
	c.Set(ctxUserID, int64(7))

	quote := &checkout.Quote{
		Flight:        &domain.Flight{ID: 4},
		WalletBalance: 50000,
		SurgeActive:   true,
		Prices:        domain.FareTable{Economy: 1100, Business: 2750, FirstClass: 6600},
	}
	mockService.On("Quote", c.Request.Context(), int64(7), int64(4)).Return(quote, nil)

	handler.quote(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response checkout.Quote
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.SurgeActive)
	assert.Equal(t, int64(1100), response.Prices.Economy)

	mockService.AssertExpectations(t)
}

func TestCheckoutHandler_quote_FlightNotFound(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	handler := NewCheckoutHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "flightId", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/checkout/99", nil)
	c.Set(ctxUserID, int64(7))

	mockService.On("Quote", c.Request.Context(), int64(7), int64(99)).Return(nil, domain.ErrFlightNotFound)

	handler.quote(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutHandler_book(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	handler := NewCheckoutHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookRequest{FlightID: 4, TravelClass: "business"})
	c.Request = httptest.NewRequest("POST", "/checkout", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, int64(7))

	ticket := &domain.Ticket{
		ID:          1,
		Reference:   "ref-1",
		UserID:      7,
		UserName:    "Alice",
		FlightID:    4,
		TravelClass: domain.TravelClassBusiness,
		Price:       2750,
		CreatedAt:   time.Now(),
	}
	mockService.On("Book", c.Request.Context(), int64(7), int64(4), domain.TravelClassBusiness).Return(ticket, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response ticketResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ref-1", response.Reference)
	assert.Equal(t, int64(2750), response.Price)

	mockService.AssertExpectations(t)
}

func TestCheckoutHandler_book_ErrorStatuses(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, wantStatus: http.StatusPaymentRequired},
		{name: "unknown travel class", err: domain.ErrInvalidTravelClass, wantStatus: http.StatusBadRequest},
		{name: "wallet missing", err: domain.ErrWalletNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict after retries", err: domain.ErrPurchaseConflict, wantStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockCheckoutUseCase{}
			handler := NewCheckoutHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			body, _ := json.Marshal(bookRequest{FlightID: 4, TravelClass: "economy"})
			c.Request = httptest.NewRequest("POST", "/checkout", bytes.NewReader(body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(ctxUserID, int64(7))

			mockService.On("Book", c.Request.Context(), int64(7), int64(4), domain.TravelClassEconomy).Return(nil, tc.err)

			handler.book(c)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestCheckoutHandler_listTickets(t *testing.T) {
	mockService := &MockCheckoutUseCase{}
	handler := NewCheckoutHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/tickets", nil)
	c.Set(ctxUserID, int64(7))

	tickets := []domain.TicketWithFlight{
		{Ticket: domain.Ticket{ID: 1, Reference: "ref-1", UserID: 7, Price: 1000}},
	}
	mockService.On("ListTickets", c.Request.Context(), int64(7)).Return(tickets, nil)

	handler.listTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
