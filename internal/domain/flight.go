package domain

import "time"

type Airline struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type Airport struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// Aircraft carries the fare table and aggregate seat counts.
// Per-seat assignment is not tracked anywhere in the system.
type Aircraft struct {
	ID              int64     `json:"id"`
	AirlineID       int64     `json:"airline_id"`
	Model           string    `json:"model"`
	EconomySeats    int       `json:"economy_seats"`
	BusinessSeats   int       `json:"business_seats"`
	FirstClassSeats int       `json:"firstclass_seats"`
	TotalSeats      int       `json:"total_seats"`
	Fares           FareTable `json:"fares"`
	CreatedAt       time.Time `json:"created_at"`
}

// FareTable holds per-class prices in integer currency units.
type FareTable struct {
	Economy    int64 `json:"economy"`
	Business   int64 `json:"business"`
	FirstClass int64 `json:"firstclass"`
}

type Flight struct {
	ID               int64     `json:"id"`
	FlightNumber     string    `json:"flight_number"`
	AircraftID       int64     `json:"aircraft_id"`
	AircraftModel    string    `json:"aircraft_model"`
	AirlineName      string    `json:"airline_name"`
	DepartureAirport Airport   `json:"departure_airport"`
	ArrivalAirport   Airport   `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Fares            FareTable `json:"fares"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FlightFilter struct {
	Source      string
	Destination string
	Day         time.Time
	Limit       int
}
