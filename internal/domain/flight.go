package domain

// Flight is a catalog entry. Flights are created once at startup and never
// change; bookings reference them by Number.
type Flight struct {
	Number        string `json:"number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	Capacity      int    `json:"capacity"`
}
