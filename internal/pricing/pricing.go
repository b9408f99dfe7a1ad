// Package pricing computes ticket prices, including the repeat-booking
// surge rule. It is a pure function of the fare table, the requested class
// and the buyer's recent ticket history, so the quote and book paths share
// one implementation and always agree.
package pricing

import (
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
)

type Rules struct {
	// SurgeTickets is how many recent purchases on the same flight are
	// inspected; with fewer prior tickets surge never applies.
	SurgeTickets int
	// SurgeWindow is how recent the oldest of those purchases must be.
	SurgeWindow time.Duration
	// SurgePercent is the fare markup applied when surge is active.
	SurgePercent int64
}

func DefaultRules() Rules {
	return Rules{
		SurgeTickets: 3,
		SurgeWindow:  10 * time.Minute,
		SurgePercent: 10,
	}
}

// SurgeActive reports whether a purchase made at now is surged. history
// holds creation times of the buyer's most recent tickets for the same
// flight, newest first; tickets for other flights must not be included.
func (r Rules) SurgeActive(now time.Time, history []time.Time) bool {
	if r.SurgeTickets <= 0 || len(history) < r.SurgeTickets {
		return false
	}
	diff := now.Sub(history[r.SurgeTickets-1])
	if diff < 0 {
		diff = -diff
	}
	return diff <= r.SurgeWindow
}

// BaseFare selects the fare column for a travel class.
func BaseFare(fares domain.FareTable, class domain.TravelClass) (int64, error) {
	switch class {
	case domain.TravelClassEconomy:
		return fares.Economy, nil
	case domain.TravelClassBusiness:
		return fares.Business, nil
	case domain.TravelClassFirstClass:
		return fares.FirstClass, nil
	default:
		return 0, domain.ErrInvalidTravelClass
	}
}

// Price returns the amount to charge: the base fare, marked up and rounded
// half-up when surge is active.
func (r Rules) Price(fares domain.FareTable, class domain.TravelClass, surge bool) (int64, error) {
	base, err := BaseFare(fares, class)
	if err != nil {
		return 0, err
	}
	if !surge {
		return base, nil
	}
	return base + (base*r.SurgePercent+50)/100, nil
}
