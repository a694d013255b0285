package email

import (
	"context"

	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/rs/zerolog"
)

// Sender delivers booking notifications. Delivery is a log line for now; the
// worker owns the transport so a real mail client can slot in here.
type Sender struct {
	log zerolog.Logger
}

func NewSender(log zerolog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.log.Info().
		Str("type", event.Type).
		Str("booking_id", event.BookingID).
		Str("flight", event.FlightNumber).
		Str("passenger", event.PassengerName).
		Str("seat", event.Seat).
		Msg("send booking notification")
	return nil
}
