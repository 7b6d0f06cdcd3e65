package models

// Reservation as returned by the booking API. Created by the wizard's final
// step and read back on the "my reservations" view; this service never
// mutates one.
type Reservation struct {
	ID                  int     `json:"id"`
	ReferenceNumber     string  `json:"reference_number"`
	Game                *Game   `json:"game,omitempty"`
	Date                string  `json:"date"`
	Time                string  `json:"time"`
	Players             int     `json:"players"`
	TotalPrice          float64 `json:"total_price"`
	Status              string  `json:"status"`
	SpecialRequirements string  `json:"special_requirements,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// Reservation statuses known to this front end. The authoritative set is the
// backend's; anything else is displayed as-is.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)
