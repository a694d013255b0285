package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/rs/zerolog"
)

type UseCase interface {
	Book(ctx context.Context, input BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type Store interface {
	Book(flight domain.Flight, passengerName, passportNumber, seat string) (*domain.Booking, error)
	Cancel(id string) (bool, error)
	List() []domain.Booking
}

type Resolver interface {
	Resolve(number string) (domain.Flight, bool)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookInput struct {
	FlightNumber   string `json:"flight_number"`
	PassengerName  string `json:"passenger_name"`
	PassportNumber string `json:"passport_number"`
	Seat           string `json:"seat"`
}

type Option func(*Service)

func WithNotificationsTopic(topic string) Option {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

type Service struct {
	store              Store
	catalog            Resolver
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	log                zerolog.Logger
}

func NewService(store Store, catalog Resolver, producer Producer, bookingTopic string, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		store:        store,
		catalog:      catalog,
		producer:     producer,
		bookingTopic: bookingTopic,
		log:          log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book resolves the flight number against the catalog and delegates to the
// store. A storage write failure is returned together with the created
// booking: the mutation is kept in memory, not rolled back.
func (s *Service) Book(ctx context.Context, input BookInput) (*domain.Booking, error) {
	flight, ok := s.catalog.Resolve(input.FlightNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFlightNotFound, input.FlightNumber)
	}

	b, err := s.store.Book(flight, input.PassengerName, input.PassportNumber, input.Seat)
	if err != nil {
		if b == nil {
			return nil, err
		}
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("booking kept in memory, save failed")
	}

	s.publish(ctx, "booking_created", *b)
	return b, err
}

// Cancel removes the booking with the given ID, reporting whether a removal
// occurred. An unknown ID is not an error.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	var cancelled *domain.Booking
	if s.producer != nil {
		for _, b := range s.store.List() {
			if b.ID == id {
				cancelled = &b
				break
			}
		}
	}

	ok, err := s.store.Cancel(id)
	if err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			return ok, err
		}
		s.log.Warn().Err(err).Str("booking_id", id).Msg("cancellation kept in memory, save failed")
	}
	if ok && cancelled != nil {
		s.publish(ctx, "booking_cancelled", *cancelled)
	}
	return ok, err
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.store.List(), nil
}

func (s *Service) publish(ctx context.Context, eventType string, b domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     b.ID,
		FlightNumber:  b.FlightNumber,
		PassengerName: b.PassengerName,
		Seat:          b.Seat,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, b.ID, event); err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Str("type", eventType).Msg("publish booking event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			s.log.Warn().Err(err).Str("booking_id", b.ID).Str("type", eventType).Msg("publish notification event")
		}
	}
}

var _ UseCase = (*Service)(nil)
