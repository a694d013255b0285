package domain

// Booking links a passenger to a flight. FlightNumber is a key into the
// catalog, not an embedded Flight.
type Booking struct {
	ID             string `json:"id"`
	FlightNumber   string `json:"flight_number"`
	PassengerName  string `json:"passenger_name"`
	PassportNumber string `json:"passport_number"`
	Seat           string `json:"seat"`
}
