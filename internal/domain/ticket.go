package domain

import "time"

type TravelClass string

const (
	TravelClassEconomy    TravelClass = "economy"
	TravelClassBusiness   TravelClass = "business"
	TravelClassFirstClass TravelClass = "firstclass"
)

// ParseTravelClass validates a wire value. Unrecognized classes are
// rejected rather than silently priced as economy.
func ParseTravelClass(s string) (TravelClass, error) {
	switch TravelClass(s) {
	case TravelClassEconomy, TravelClassBusiness, TravelClassFirstClass:
		return TravelClass(s), nil
	default:
		return "", ErrInvalidTravelClass
	}
}

// Ticket is an immutable record of a completed purchase. UserName and
// UserEmail are denormalized for receipt rendering.
type Ticket struct {
	ID          int64       `json:"id"`
	Reference   string      `json:"reference"`
	UserID      int64       `json:"user_id"`
	UserName    string      `json:"user_name"`
	UserEmail   string      `json:"user_email"`
	FlightID    int64       `json:"flight_id"`
	TravelClass TravelClass `json:"travel_class"`
	Price       int64       `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TicketWithFlight is the ticket history row shown on the receipts page.
type TicketWithFlight struct {
	Ticket
	Flight Flight `json:"flight"`
}
