package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, filter domain.FlightFilter, flights []domain.Flight) error {
	args := m.Called(ctx, filter, flights)
	return args.Error(0)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{Source: "London", Day: time.Now()}
	cached := []domain.Flight{{ID: 1, FlightNumber: "SK101"}}

	mockCache.On("GetFlights", ctx, filter).Return(cached, nil).Once()

	flights, err := service.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "Search")
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheMissFallsBackToRepo(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{Destination: "Paris", Day: time.Now()}
	stored := []domain.Flight{{ID: 2, FlightNumber: "SK202"}}

	mockCache.On("GetFlights", ctx, filter).Return(nil, nil).Once()
	mockRepo.On("Search", ctx, filter).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, filter, stored).Return(nil).Once()

	flights, err := service.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheErrorIsIgnored(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := domain.FlightFilter{Day: time.Now()}
	stored := []domain.Flight{{ID: 3}}

	mockCache.On("GetFlights", ctx, filter).Return(nil, errors.New("redis down")).Once()
	mockRepo.On("Search", ctx, filter).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, filter, stored).Return(errors.New("redis down")).Once()

	flights, err := service.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
}

func TestFlightService_GetByID(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Flight{ID: 5}, nil).Once()

	flight, err := service.GetByID(ctx, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), flight.ID)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrFlightNotFound).Once()

	flight, err := service.GetByID(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.Nil(t, flight)
}
