// Package store holds the mutable set of active bookings and the booking ID
// allocator, persisting the full set to the bookings file on every mutation.
package store

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/airreserve/internal/codec"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/rs/zerolog"
)

// Store owns the active bookings and the sequential ID counter. A single
// mutex covers both the in-memory mutation and the file write, so each
// mutating call is one serialized unit.
type Store struct {
	mu       sync.Mutex
	path     string
	bookings []domain.Booking
	nextID   int
}

// Open loads the persisted booking set from path, resolving each record
// against the catalog and seeding the ID counter past the highest recovered
// suffix. Records with an unknown flight or a bad field count are dropped
// with a warning. A read failure is surfaced once, and the store starts
// empty with the counter at 1.
func Open(path string, resolver codec.Resolver, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, nextID: 1}

	lines, err := codec.Read(path)
	if err != nil {
		return s, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	bookings, next, skipped := codec.Deserialize(lines, resolver)
	for _, reason := range skipped {
		log.Warn().Str("path", path).Str("reason", reason).Msg("skipping persisted booking")
	}
	s.bookings = bookings
	s.nextID = next
	return s, nil
}

// Book allocates the next booking ID, stores the booking, and persists the
// store. On a write failure the booking stays in memory and is returned
// together with the error.
func (s *Store) Book(flight domain.Flight, passengerName, passportNumber, seat string) (*domain.Booking, error) {
	if passengerName == "" {
		return nil, fmt.Errorf("%w: passenger name is required", domain.ErrValidation)
	}
	if passportNumber == "" {
		return nil, fmt.Errorf("%w: passport number is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := domain.Booking{
		ID:             fmt.Sprintf("B%d", s.nextID),
		FlightNumber:   flight.Number,
		PassengerName:  passengerName,
		PassportNumber: passportNumber,
		Seat:           seat,
	}
	s.nextID++
	s.bookings = append(s.bookings, b)

	if err := codec.Write(s.path, s.bookings); err != nil {
		return &b, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return &b, nil
}

// Cancel removes the booking with the given ID and persists the store,
// reporting whether a removal occurred. A missing ID is not an error.
// The counter is never decremented; a cancelled ID is never reallocated.
func (s *Store) Cancel(id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		if err := codec.Write(s.path, s.bookings); err != nil {
			return true, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		return true, nil
	}
	return false, nil
}

// List returns the active bookings in creation order.
func (s *Store) List() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
