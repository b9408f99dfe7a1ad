package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PriceFunc computes the amount to charge from the flight's fare table and
// the buyer's recent same-flight ticket history (newest first). It is called
// inside the purchase transaction, after the wallet row is locked, so the
// price can never be based on stale history.
type PriceFunc func(fares domain.FareTable, history []time.Time) (int64, error)

type PurchaseInput struct {
	Reference    string
	UserID       int64
	FlightID     int64
	TravelClass  domain.TravelClass
	HistoryLimit int
	Price        PriceFunc
}

type TicketRepository interface {
	Purchase(ctx context.Context, input PurchaseInput) (*domain.Ticket, error)
	RecentForFlight(ctx context.Context, userID, flightID int64, limit int) ([]time.Time, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.TicketWithFlight, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

// Purchase debits the wallet and issues the ticket in one transaction.
// The wallet row is locked before the balance check, so concurrent
// purchases against the same wallet serialize while purchases against
// different wallets proceed in parallel. Either both writes commit or
// neither does.
func (r *PGTicketRepository) Purchase(ctx context.Context, input PurchaseInput) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var walletID, balance int64
	err = tx.QueryRow(ctx, `SELECT id, balance FROM wallets WHERE user_id=$1 FOR UPDATE`, input.UserID).
		Scan(&walletID, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, asPurchaseConflict(err)
	}

	var fares domain.FareTable
	err = tx.QueryRow(ctx, `SELECT a.economy_seat_price, a.business_seat_price, a.firstclass_seat_price
		FROM flights f JOIN aircrafts a ON a.id = f.aircraft_id WHERE f.id=$1`, input.FlightID).
		Scan(&fares.Economy, &fares.Business, &fares.FirstClass)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, asPurchaseConflict(err)
	}

	history, err := recentForFlight(ctx, tx, input.UserID, input.FlightID, input.HistoryLimit)
	if err != nil {
		return nil, asPurchaseConflict(err)
	}

	price, err := input.Price(fares, history)
	if err != nil {
		return nil, err
	}
	if balance < price {
		return nil, domain.ErrInsufficientFunds
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance = balance - $1, updated_at = now() WHERE id=$2`, price, walletID); err != nil {
		return nil, asPurchaseConflict(err)
	}

	ticket := &domain.Ticket{
		Reference:   input.Reference,
		UserID:      input.UserID,
		FlightID:    input.FlightID,
		TravelClass: input.TravelClass,
		Price:       price,
	}
	err = tx.QueryRow(ctx, `INSERT INTO tickets (reference, user_id, flight_id, travel_class, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, ticket.Reference, ticket.UserID, ticket.FlightID, ticket.TravelClass, ticket.Price).
		Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		return nil, asPurchaseConflict(err)
	}

	if err := tx.QueryRow(ctx, `SELECT name, email FROM users WHERE id=$1`, input.UserID).
		Scan(&ticket.UserName, &ticket.UserEmail); err != nil {
		return nil, asPurchaseConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, asPurchaseConflict(err)
	}
	return ticket, nil
}

func (r *PGTicketRepository) RecentForFlight(ctx context.Context, userID, flightID int64, limit int) ([]time.Time, error) {
	return recentForFlight(ctx, r.db, userID, flightID, limit)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func recentForFlight(ctx context.Context, q querier, userID, flightID int64, limit int) ([]time.Time, error) {
	rows, err := q.Query(ctx, `SELECT created_at FROM tickets WHERE user_id=$1 AND flight_id=$2 ORDER BY created_at DESC LIMIT $3`, userID, flightID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		history = append(history, t)
	}
	return history, rows.Err()
}

func (r *PGTicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.TicketWithFlight, error) {
	rows, err := r.db.Query(ctx, `SELECT t.id, t.reference, t.user_id, u.name, u.email, t.flight_id, t.travel_class, t.price, t.created_at,
		f.id, f.flight_number, f.aircraft_id, a.model, al.name, f.departure_time, f.duration_minutes,
		da.id, da.code, da.name, da.city,
		aa.id, aa.code, aa.name, aa.city
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		JOIN flights f ON f.id = t.flight_id
		JOIN aircrafts a ON a.id = f.aircraft_id
		JOIN airlines al ON al.id = a.airline_id
		JOIN airports da ON da.id = f.departure_airport_id
		JOIN airports aa ON aa.id = f.arrival_airport_id
		WHERE t.user_id=$1
		ORDER BY t.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.TicketWithFlight, 0)
	for rows.Next() {
		var t domain.TicketWithFlight
		if err := rows.Scan(&t.ID, &t.Reference, &t.UserID, &t.UserName, &t.UserEmail, &t.FlightID, &t.TravelClass, &t.Price, &t.CreatedAt,
			&t.Flight.ID, &t.Flight.FlightNumber, &t.Flight.AircraftID, &t.Flight.AircraftModel, &t.Flight.AirlineName, &t.Flight.DepartureTime, &t.Flight.DurationMinutes,
			&t.Flight.DepartureAirport.ID, &t.Flight.DepartureAirport.Code, &t.Flight.DepartureAirport.Name, &t.Flight.DepartureAirport.City,
			&t.Flight.ArrivalAirport.ID, &t.Flight.ArrivalAirport.Code, &t.Flight.ArrivalAirport.Name, &t.Flight.ArrivalAirport.City); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// asPurchaseConflict maps serialization and deadlock failures to
// ErrPurchaseConflict so the service can retry a bounded number of times.
func asPurchaseConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return domain.ErrPurchaseConflict
	}
	return err
}

var _ TicketRepository = (*PGTicketRepository)(nil)
