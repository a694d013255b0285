package catalog

import (
	"sort"

	"github.com/Domenick1991/airreserve/internal/domain"
)

// Catalog is the fixed set of known flights. Read-only after construction.
type Catalog struct {
	flights  []domain.Flight
	byNumber map[string]domain.Flight
}

func New(flights []domain.Flight) *Catalog {
	byNumber := make(map[string]domain.Flight, len(flights))
	for _, f := range flights {
		byNumber[f.Number] = f
	}
	return &Catalog{flights: flights, byNumber: byNumber}
}

// Seed returns the default flight catalog.
func Seed() *Catalog {
	return New([]domain.Flight{
		{Number: "AI101", Origin: "New York", Destination: "London", DepartureTime: "09:00 AM", Capacity: 180},
		{Number: "BA202", Origin: "London", Destination: "Paris", DepartureTime: "12:00 PM", Capacity: 100},
		{Number: "DL303", Origin: "Paris", Destination: "Rome", DepartureTime: "03:00 PM", Capacity: 120},
		{Number: "AF404", Origin: "Rome", Destination: "Berlin", DepartureTime: "06:00 PM", Capacity: 150},
		{Number: "LH505", Origin: "Berlin", Destination: "New York", DepartureTime: "09:00 PM", Capacity: 200},
		{Number: "UA606", Origin: "New York", Destination: "Paris", DepartureTime: "08:00 AM", Capacity: 190},
		{Number: "AA707", Origin: "London", Destination: "Rome", DepartureTime: "01:00 PM", Capacity: 160},
	})
}

// List returns all flights in catalog order.
func (c *Catalog) List() []domain.Flight {
	out := make([]domain.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

// Search returns every flight whose origin and destination match exactly,
// in catalog order. Matching is case-sensitive, no trimming.
func (c *Catalog) Search(origin, destination string) []domain.Flight {
	matches := []domain.Flight{}
	for _, f := range c.flights {
		if f.Origin == origin && f.Destination == destination {
			matches = append(matches, f)
		}
	}
	return matches
}

// Resolve looks up a flight by its number.
func (c *Catalog) Resolve(number string) (domain.Flight, bool) {
	f, ok := c.byNumber[number]
	return f, ok
}

// Origins returns the distinct departure cities, sorted.
func (c *Catalog) Origins() []string {
	return c.distinct(func(f domain.Flight) string { return f.Origin })
}

// Destinations returns the distinct arrival cities, sorted.
func (c *Catalog) Destinations() []string {
	return c.distinct(func(f domain.Flight) string { return f.Destination })
}

func (c *Catalog) distinct(field func(domain.Flight) string) []string {
	seen := make(map[string]struct{}, len(c.flights))
	values := []string{}
	for _, f := range c.flights {
		v := field(f)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
