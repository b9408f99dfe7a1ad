package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.flight_number, f.aircraft_id, a.model, al.name,
	da.id, da.code, da.name, da.city,
	aa.id, aa.code, aa.name, aa.city,
	f.departure_time, f.duration_minutes,
	a.economy_seat_price, a.business_seat_price, a.firstclass_seat_price,
	f.created_at, f.updated_at`

const flightJoins = `FROM flights f
	JOIN aircrafts a ON a.id = f.aircraft_id
	JOIN airlines al ON al.id = a.airline_id
	JOIN airports da ON da.id = f.departure_airport_id
	JOIN airports aa ON aa.id = f.arrival_airport_id`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.AircraftID, &f.AircraftModel, &f.AirlineName,
		&f.DepartureAirport.ID, &f.DepartureAirport.Code, &f.DepartureAirport.Name, &f.DepartureAirport.City,
		&f.ArrivalAirport.ID, &f.ArrivalAirport.Code, &f.ArrivalAirport.Name, &f.ArrivalAirport.City,
		&f.DepartureTime, &f.DurationMinutes,
		&f.Fares.Economy, &f.Fares.Business, &f.Fares.FirstClass,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, aircraft_id, departure_airport_id, arrival_airport_id, departure_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		flight.FlightNumber, flight.AircraftID, flight.DepartureAirport.ID, flight.ArrivalAirport.ID, flight.DepartureTime, flight.DurationMinutes).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` `+flightJoins+` WHERE f.id=$1`, id)
	flight, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

// Search lists flights departing on the filter day, optionally narrowed by
// source and destination city or airport code.
func (r *PGFlightRepository) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	y, m, d := filter.Day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, filter.Day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` `+flightJoins+`
		WHERE f.departure_time >= $1 AND f.departure_time < $2
		AND ($3 = '' OR da.city ILIKE '%'||$3||'%' OR da.code ILIKE '%'||$3||'%')
		AND ($4 = '' OR aa.city ILIKE '%'||$4||'%' OR aa.code ILIKE '%'||$4||'%')
		ORDER BY f.departure_time
		LIMIT $5`, dayStart, dayEnd, filter.Source, filter.Destination, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
