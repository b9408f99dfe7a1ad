package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/skyfare/internal/domain"
	"github.com/Domenick1991/skyfare/internal/kafka"
	"github.com/Domenick1991/skyfare/internal/pricing"
	"github.com/Domenick1991/skyfare/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CheckoutUseCase interface {
	Quote(ctx context.Context, userID, flightID int64) (*Quote, error)
	Book(ctx context.Context, userID, flightID int64, class domain.TravelClass) (*domain.Ticket, error)
	ListTickets(ctx context.Context, userID int64) ([]domain.TicketWithFlight, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Quote is the read-only pricing view rendered before a purchase. Prices
// include the surge markup when SurgeActive is set, so the amount shown is
// the amount a booking placed now would charge.
type Quote struct {
	Flight        *domain.Flight   `json:"flight"`
	WalletBalance int64            `json:"wallet_balance"`
	SurgeActive   bool             `json:"surge_active"`
	Prices        domain.FareTable `json:"prices"`
}

type CheckoutService struct {
	tickets            repository.TicketRepository
	wallets            repository.WalletRepository
	flights            repository.FlightRepository
	producer           Producer
	ticketsTopic       string
	notificationsTopic string
	rules              pricing.Rules
	retries            int
	now                func() time.Time
	log                *logrus.Logger
}

type CheckoutServiceOption func(*CheckoutService)

func WithNotificationsTopic(topic string) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.now = now
	}
}

func NewCheckoutService(
	tickets repository.TicketRepository,
	wallets repository.WalletRepository,
	flights repository.FlightRepository,
	producer Producer,
	ticketsTopic string,
	rules pricing.Rules,
	retries int,
	log *logrus.Logger,
	opts ...CheckoutServiceOption,
) *CheckoutService {
	service := &CheckoutService{
		tickets:      tickets,
		wallets:      wallets,
		flights:      flights,
		producer:     producer,
		ticketsTopic: ticketsTopic,
		rules:        rules,
		retries:      retries,
		now:          time.Now,
		log:          log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *CheckoutService) Quote(ctx context.Context, userID, flightID int64) (*Quote, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.tickets.RecentForFlight(ctx, userID, flightID, s.rules.SurgeTickets)
	if err != nil {
		return nil, err
	}

	surge := s.rules.SurgeActive(s.now(), history)

	economy, err := s.rules.Price(flight.Fares, domain.TravelClassEconomy, surge)
	if err != nil {
		return nil, err
	}
	business, err := s.rules.Price(flight.Fares, domain.TravelClassBusiness, surge)
	if err != nil {
		return nil, err
	}
	first, err := s.rules.Price(flight.Fares, domain.TravelClassFirstClass, surge)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Flight:        flight,
		WalletBalance: wallet.Balance,
		SurgeActive:   surge,
		Prices:        domain.FareTable{Economy: economy, Business: business, FirstClass: first},
	}, nil
}

// Book charges the wallet and issues a ticket. The surge flag and price are
// recomputed inside the purchase transaction, never trusted from a prior
// quote. Commit races on the wallet row are retried a bounded number of
// times before surfacing.
func (s *CheckoutService) Book(ctx context.Context, userID, flightID int64, class domain.TravelClass) (*domain.Ticket, error) {
	if _, err := domain.ParseTravelClass(string(class)); err != nil {
		return nil, err
	}

	input := repository.PurchaseInput{
		Reference:    uuid.NewString(),
		UserID:       userID,
		FlightID:     flightID,
		TravelClass:  class,
		HistoryLimit: s.rules.SurgeTickets,
		Price: func(fares domain.FareTable, history []time.Time) (int64, error) {
			surge := s.rules.SurgeActive(s.now(), history)
			return s.rules.Price(fares, class, surge)
		},
	}

	var ticket *domain.Ticket
	var err error
	for attempt := 0; ; attempt++ {
		ticket, err = s.tickets.Purchase(ctx, input)
		if err == nil || !errors.Is(err, domain.ErrPurchaseConflict) || attempt >= s.retries {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "ticket_issued", ticket); err != nil {
		s.log.WithError(err).WithField("reference", ticket.Reference).Warn("failed to publish ticket event")
	}
	return ticket, nil
}

func (s *CheckoutService) ListTickets(ctx context.Context, userID int64) ([]domain.TicketWithFlight, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *CheckoutService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) error {
	if s.producer == nil || s.ticketsTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:        eventType,
		Reference:   ticket.Reference,
		UserID:      ticket.UserID,
		UserName:    ticket.UserName,
		Email:       ticket.UserEmail,
		FlightID:    ticket.FlightID,
		TravelClass: string(ticket.TravelClass),
		Price:       ticket.Price,
		CreatedAt:   ticket.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.ticketsTopic, ticket.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, ticket.Reference, event)
	}
	return nil
}

var _ CheckoutUseCase = (*CheckoutService)(nil)
