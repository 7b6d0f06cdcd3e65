package models

// Game is the catalog entry as served by the booking API. Title and
// description arrive already localized for the language the list was
// requested with.
type Game struct {
	ID                int     `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Difficulty        string  `json:"difficulty"`
	Status            string  `json:"status"`
	Image             string  `json:"image"`
	Price             float64 `json:"price"`
	MaxPlayers        int     `json:"max_players"`
	Duration          int     `json:"duration"`
	WorkingHoursStart string  `json:"working_hours_start"`
	WorkingHoursEnd   string  `json:"working_hours_end"`
	IsFeatured        bool    `json:"is_featured"`
	IsActive          bool    `json:"is_active"`
}

// TimeSlot is one bookable time on a given date. Capacity counts are only
// present when the API reports them; older deployments send the bare
// availability flag.
type TimeSlot struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	AvailableCapacity *int   `json:"available_capacity,omitempty"`
	UsedCapacity      *int   `json:"used_capacity,omitempty"`
	MaxCapacity       *int   `json:"max_capacity,omitempty"`
}

// HasCapacity reports whether the slot carries explicit capacity counts.
func (s TimeSlot) HasCapacity() bool {
	return s.AvailableCapacity != nil
}
