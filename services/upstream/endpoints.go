package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"questbook/models"
)

// Games fetches the localized game list. Inactive entries arrive as nulls
// and are dropped here.
func (c *Client) Games(ctx context.Context, lang string) ([]models.Game, error) {
	var raw []*models.Game
	if err := c.get(ctx, "games/", lang, nil, &raw); err != nil {
		return nil, err
	}
	games := make([]models.Game, 0, len(raw))
	for _, g := range raw {
		if g != nil {
			games = append(games, *g)
		}
	}
	return games, nil
}

func (c *Client) Game(ctx context.Context, lang string, id int) (*models.Game, error) {
	var game models.Game
	path := "games/" + strconv.Itoa(id) + "/"
	if err := c.get(ctx, path, lang, nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// AvailableTimes fetches the slot list for a game on a date (YYYY-MM-DD).
// The endpoint reports business problems inside a 200 body as well, so both
// shapes are handled.
func (c *Client) AvailableTimes(ctx context.Context, lang string, gameID int, date string) ([]models.TimeSlot, error) {
	q := url.Values{}
	q.Set("game_id", strconv.Itoa(gameID))
	q.Set("date", date)

	var payload struct {
		TimeSlots []models.TimeSlot `json:"time_slots"`
		Error     string            `json:"error"`
	}
	if err := c.get(ctx, "games/available-times/", lang, q, &payload); err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, classify(http.StatusOK, payload.Error)
	}
	return payload.TimeSlots, nil
}

func (c *Client) SendOTP(ctx context.Context, lang, email, firstName, lastName string) error {
	body := map[string]string{
		"email":      email,
		"first_name": firstName,
		"last_name":  lastName,
	}
	return c.post(ctx, "games/send-otp/", lang, body, nil)
}

func (c *Client) VerifyOTP(ctx context.Context, lang, email, otp string) error {
	body := map[string]string{
		"email": email,
		"otp":   otp,
	}
	return c.post(ctx, "games/verify-otp/", lang, body, nil)
}

// CreateReservationRequest is the final wizard submission.
type CreateReservationRequest struct {
	Game                int    `json:"game"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Players             int    `json:"players"`
	SpecialRequirements string `json:"special_requirements"`
	Email               string `json:"email"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
}

// CreateReservationResult carries the created reservation plus the token
// pair the backend issues alongside it, when it does.
type CreateReservationResult struct {
	Reservation models.Reservation `json:"reservation"`
	Tokens      *models.TokenPair  `json:"tokens,omitempty"`
}

func (c *Client) CreateReservation(ctx context.Context, lang string, req CreateReservationRequest) (*CreateReservationResult, error) {
	var result CreateReservationResult
	if err := c.post(ctx, "games/create/", lang, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePaymentSession asks the billing service for a checkout URL to
// redirect the visitor to.
func (c *Client) CreatePaymentSession(ctx context.Context, lang string, reservationID int) (string, error) {
	body := map[string]int{"reservation_id": reservationID}
	var payload struct {
		PaymentURL string `json:"payment_url"`
	}
	if err := c.post(ctx, "billing/create-payment/", lang, body, &payload); err != nil {
		return "", err
	}
	return payload.PaymentURL, nil
}

// Reservations lists the visitor's reservations. A 401 means "nothing booked
// under this identity yet" and maps to an empty list; any other failure is a
// real error (the backend team confirmed masking them hid outages).
func (c *Client) Reservations(ctx context.Context, lang, accessToken string) ([]models.Reservation, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "reservations/", lang, nil, nil)
	if err != nil {
		return nil, err
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	var reservations []models.Reservation
	if err := c.doJSON(req, &reservations); err != nil {
		if IsKind(err, ErrUnauthorized) {
			return []models.Reservation{}, nil
		}
		return nil, err
	}
	return reservations, nil
}

func (c *Client) Contacts(ctx context.Context, lang string) (*models.Contacts, error) {
	var payload struct {
		Success bool            `json:"success"`
		Data    models.Contacts `json:"data"`
	}
	if err := c.get(ctx, "contacts/", lang, nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Data, nil
}
