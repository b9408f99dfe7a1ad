package repository

import (
	"context"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FleetRepository interface {
	CreateAirline(ctx context.Context, airline *domain.Airline) error
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateAircraft(ctx context.Context, aircraft *domain.Aircraft) error
	ListAircraft(ctx context.Context) ([]domain.Aircraft, error)
}

type PGFleetRepository struct {
	db *pgxpool.Pool
}

func NewFleetRepository(db *pgxpool.Pool) FleetRepository {
	return &PGFleetRepository{db: db}
}

func (r *PGFleetRepository) CreateAirline(ctx context.Context, airline *domain.Airline) error {
	return r.db.QueryRow(ctx, `INSERT INTO airlines (name, code) VALUES ($1, $2) RETURNING id, created_at`,
		airline.Name, airline.Code).Scan(&airline.ID, &airline.CreatedAt)
}

func (r *PGFleetRepository) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, created_at FROM airlines ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		var a domain.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.CreatedAt); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (r *PGFleetRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (code, name, city) VALUES ($1, $2, $3) RETURNING id, created_at`,
		airport.Code, airport.Name, airport.City).Scan(&airport.ID, &airport.CreatedAt)
}

func (r *PGFleetRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name, city, created_at FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.CreatedAt); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGFleetRepository) CreateAircraft(ctx context.Context, aircraft *domain.Aircraft) error {
	aircraft.TotalSeats = aircraft.EconomySeats + aircraft.BusinessSeats + aircraft.FirstClassSeats
	return r.db.QueryRow(ctx, `INSERT INTO aircrafts (airline_id, model, economy_seats, business_seats, firstclass_seats, total_seats, economy_seat_price, business_seat_price, firstclass_seat_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		aircraft.AirlineID, aircraft.Model, aircraft.EconomySeats, aircraft.BusinessSeats, aircraft.FirstClassSeats, aircraft.TotalSeats,
		aircraft.Fares.Economy, aircraft.Fares.Business, aircraft.Fares.FirstClass).
		Scan(&aircraft.ID, &aircraft.CreatedAt)
}

func (r *PGFleetRepository) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, airline_id, model, economy_seats, business_seats, firstclass_seats, total_seats, economy_seat_price, business_seat_price, firstclass_seat_price, created_at FROM aircrafts ORDER BY model`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aircraft := make([]domain.Aircraft, 0)
	for rows.Next() {
		var a domain.Aircraft
		if err := rows.Scan(&a.ID, &a.AirlineID, &a.Model, &a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats, &a.TotalSeats,
			&a.Fares.Economy, &a.Fares.Business, &a.Fares.FirstClass, &a.CreatedAt); err != nil {
			return nil, err
		}
		aircraft = append(aircraft, a)
	}
	return aircraft, rows.Err()
}

var _ FleetRepository = (*PGFleetRepository)(nil)
