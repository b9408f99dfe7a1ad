package email

import (
	"context"

	"github.com/Domenick1991/skyfare/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Sender struct {
	log *logrus.Logger
}

func NewSender(log *logrus.Logger) *Sender {
	return &Sender{log: log}
}

// Send delivers the receipt for an issued ticket. Delivery is a log line
// for now; the worker is the single integration point for a real provider.
func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	s.log.WithFields(logrus.Fields{
		"email":        event.Email,
		"reference":    event.Reference,
		"flight_id":    event.FlightID,
		"travel_class": event.TravelClass,
		"price":        event.Price,
	}).Info("receipt email sent")
	return nil
}
