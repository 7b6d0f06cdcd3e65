package models

import "time"

// Wizard step numbers. The flow is strictly linear: forward movement only
// happens through the success path of the current step's action.
const (
	StepDateTime = 1
	StepPlayers  = 2
	StepIdentity = 3
	StepOTP      = 4
	StepConfirm  = 5
	StepDone     = 6
)

// BookingDraft is the in-progress reservation a visitor is building. It lives
// in the draft store for the lifetime of the wizard and is thrown away
// afterwards; nothing in it is durable business data.
type BookingDraft struct {
	ID   string `json:"id"`
	Step int    `json:"step"`
	Lang string `json:"lang"`

	GameID int   `json:"game_id"`
	Game   *Game `json:"game,omitempty"`

	Date         string     `json:"date,omitempty"` // YYYY-MM-DD, user's local calendar date
	TimeSlots    []TimeSlot `json:"time_slots,omitempty"`
	SlotFetchTag string     `json:"slot_fetch_tag,omitempty"`
	Time         string     `json:"time,omitempty"`
	SelectedSlot *TimeSlot  `json:"selected_slot,omitempty"`

	Players int `json:"players"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`

	OTPSent            bool `json:"otp_sent"`
	EmailVerified      bool `json:"email_verified"`
	DisclaimerAccepted bool `json:"disclaimer_accepted"`

	SpecialRequirements string  `json:"special_requirements,omitempty"`
	TotalPrice          float64 `json:"total_price"`

	ReservationID   int    `json:"reservation_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	PaymentURL      string `json:"payment_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
