// Package codec converts bookings to and from the line-oriented text format
// used by the bookings file: one booking per line, five fields joined by "|".
package codec

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// Delimiter separates the fields of a persisted booking line.
const Delimiter = "|"

const fieldCount = 5

// Resolver maps a flight number to a catalog flight.
type Resolver interface {
	Resolve(number string) (domain.Flight, bool)
}

// Serialize renders bookings as persistable lines. Occurrences of the
// delimiter inside passenger name and passport number are removed, not
// escaped; the loss is accepted for format simplicity.
func Serialize(bookings []domain.Booking) []string {
	lines := make([]string, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, strings.Join([]string{
			b.ID,
			b.FlightNumber,
			strings.ReplaceAll(b.PassengerName, Delimiter, ""),
			strings.ReplaceAll(b.PassportNumber, Delimiter, ""),
			b.Seat,
		}, Delimiter))
	}
	return lines
}

// Deserialize parses persisted lines back into bookings. Lines with the wrong
// field count or an unresolvable flight number are skipped, with a reason per
// skipped line returned for diagnostics; corruption never aborts the load.
// next is the counter value to resume ID allocation from: one past the highest
// numeric ID suffix among the surviving bookings, or 1 when none survive.
// A non-numeric suffix keeps its booking but contributes nothing to next.
func Deserialize(lines []string, resolver Resolver) (bookings []domain.Booking, next int, skipped []string) {
	maxID := 0
	for i, line := range lines {
		parts := strings.Split(line, Delimiter)
		if len(parts) != fieldCount {
			skipped = append(skipped, fmt.Sprintf("line %d: expected %d fields, got %d", i+1, fieldCount, len(parts)))
			continue
		}
		if _, ok := resolver.Resolve(parts[1]); !ok {
			skipped = append(skipped, fmt.Sprintf("line %d: unknown flight %q", i+1, parts[1]))
			continue
		}
		bookings = append(bookings, domain.Booking{
			ID:             parts[0],
			FlightNumber:   parts[1],
			PassengerName:  parts[2],
			PassportNumber: parts[3],
			Seat:           parts[4],
		})
		if len(parts[0]) > 1 {
			if n, err := strconv.Atoi(parts[0][1:]); err == nil && n > maxID {
				maxID = n
			}
		}
	}
	return bookings, maxID + 1, skipped
}

// Write rewrites the whole bookings file. The truncate-and-rewrite policy is
// intentional: a crash mid-write can lose prior records, matching the format's
// original durability contract.
func Write(path string, bookings []domain.Booking) error {
	lines := Serialize(bookings)
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}

// Read returns the lines of the bookings file. A missing file is the first-run
// case and yields no lines and no error.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
