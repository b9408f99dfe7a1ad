package fleet

import (
	"context"
	"errors"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/repository"
)

type FleetUseCase interface {
	CreateAirline(ctx context.Context, airline *domain.Airline) error
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateAircraft(ctx context.Context, aircraft *domain.Aircraft) error
	ListAircraft(ctx context.Context) ([]domain.Aircraft, error)
	ScheduleFlight(ctx context.Context, flight *domain.Flight) error
}

type FleetService struct {
	fleet   repository.FleetRepository
	flights repository.FlightRepository
}

func NewFleetService(fleet repository.FleetRepository, flights repository.FlightRepository) *FleetService {
	return &FleetService{fleet: fleet, flights: flights}
}

func (s *FleetService) CreateAirline(ctx context.Context, airline *domain.Airline) error {
	if airline.Name == "" || airline.Code == "" {
		return errors.New("airline name and code are required")
	}
	return s.fleet.CreateAirline(ctx, airline)
}

func (s *FleetService) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	return s.fleet.ListAirlines(ctx)
}

func (s *FleetService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	if airport.Code == "" || airport.City == "" {
		return errors.New("airport code and city are required")
	}
	return s.fleet.CreateAirport(ctx, airport)
}

func (s *FleetService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.fleet.ListAirports(ctx)
}

func (s *FleetService) CreateAircraft(ctx context.Context, aircraft *domain.Aircraft) error {
	if aircraft.Model == "" || aircraft.AirlineID == 0 {
		return errors.New("aircraft model and airline are required")
	}
	return s.fleet.CreateAircraft(ctx, aircraft)
}

func (s *FleetService) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	return s.fleet.ListAircraft(ctx)
}

func (s *FleetService) ScheduleFlight(ctx context.Context, flight *domain.Flight) error {
	if flight.FlightNumber == "" || flight.AircraftID == 0 {
		return errors.New("flight number and aircraft are required")
	}
	if flight.DepartureAirport.ID == flight.ArrivalAirport.ID {
		return errors.New("departure and arrival airports must differ")
	}
	if flight.DurationMinutes <= 0 {
		return errors.New("duration must be positive")
	}
	return s.flights.Create(ctx, flight)
}

var _ FleetUseCase = (*FleetService)(nil)
