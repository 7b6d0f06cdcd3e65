package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	game_constants "questbook/constants/game"
	"questbook/models"
	"questbook/services/upstream"
	"questbook/utils"
)

// TotalPrice applies the pricing rule: team games are a flat per-booking
// price, everything else is price per player.
func TotalPrice(game *models.Game, players int) float64 {
	if game == nil {
		return 0
	}
	if game.Category == game_constants.CategoryTeam {
		return game.Price
	}
	return game.Price * float64(players)
}

// CapacityCeiling is the largest selectable player count for a slot: the
// game maximum, tightened by the slot's remaining capacity when the slot
// reports one.
func CapacityCeiling(game *models.Game, slot *models.TimeSlot) int {
	if game == nil {
		return 0
	}
	ceiling := game.MaxPlayers
	if slot != nil && slot.HasCapacity() && *slot.AvailableCapacity < ceiling {
		ceiling = *slot.AvailableCapacity
	}
	return ceiling
}

// Wizard drives the six-step reservation flow. Every method loads the
// draft, applies one step action and saves the result; nothing here retries
// an upstream call on its own. A failed call leaves the draft where it was
// and the visitor repeats the action.
type Wizard struct {
	store  DraftStore
	client *upstream.Client
	now    func() time.Time
}

func NewWizard(store DraftStore, client *upstream.Client) *Wizard {
	return &Wizard{store: store, client: client, now: time.Now}
}

func (w *Wizard) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	return w.store.Get(ctx, id)
}

// Start creates a fresh draft for the chosen game.
func (w *Wizard) Start(ctx context.Context, lang string, gameID int) (*models.BookingDraft, error) {
	game, err := w.client.Game(ctx, lang, gameID)
	if err != nil {
		return nil, err
	}

	now := w.now()
	draft := &models.BookingDraft{
		ID:         uuid.NewString(),
		Step:       models.StepDateTime,
		Lang:       lang,
		GameID:     gameID,
		Game:       game,
		Players:    game_constants.DefaultPlayers,
		TotalPrice: TotalPrice(game, game_constants.DefaultPlayers),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectDate stores the picked date and fetches its slots. Picking a date
// from a later step re-enters step 1: the slot, and with it any progress
// that depended on it, has to be chosen again. The draft is stamped with a
// fetch tag before the call; a response only lands if the tag (and date)
// still match when it returns, so a slow fetch for an abandoned date can
// never overwrite the list for the date picked after it.
func (w *Wizard) SelectDate(ctx context.Context, id, date string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step >= models.StepDone {
		return draft, ErrWrongStep
	}
	if !ValidDate(date) {
		return draft, ErrInvalidDate
	}
	if IsPastDate(date, w.now()) {
		return draft, ErrPastDate
	}

	tag := uuid.NewString()
	draft.Date = date
	draft.Step = models.StepDateTime
	draft.SlotFetchTag = tag
	draft.TimeSlots = nil
	draft.Time = ""
	draft.SelectedSlot = nil
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}

	slots, fetchErr := w.client.AvailableTimes(ctx, draft.Lang, draft.GameID, date)

	// Reload: the visitor may have picked another date while we were out.
	draft, err = w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.SlotFetchTag != tag || draft.Date != date {
		return draft, nil
	}
	if fetchErr != nil {
		return draft, fetchErr
	}

	draft.TimeSlots = slots
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectTime picks one of the fetched slots and moves to the player step.
func (w *Wizard) SelectTime(ctx context.Context, id, slotTime string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Date == "" || len(draft.TimeSlots) == 0 {
		return draft, ErrWrongStep
	}

	var selected *models.TimeSlot
	for i := range draft.TimeSlots {
		if draft.TimeSlots[i].Time == slotTime {
			selected = &draft.TimeSlots[i]
			break
		}
	}
	if selected == nil || !selected.Available {
		return draft, ErrSlotUnavailable
	}
	if selected.HasCapacity() && *selected.AvailableCapacity < game_constants.MinPlayers {
		return draft, ErrSlotUnavailable
	}
	// Booking today: an hour that has already passed is gone.
	if now := w.now(); draft.Date == FormatDate(now) && slotTime <= now.Format("15:04") {
		return draft, ErrSlotUnavailable
	}

	slot := *selected
	draft.Time = slotTime
	draft.SelectedSlot = &slot
	draft.Step = models.StepPlayers
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetPlayers validates the count against the capacity ceiling and moves to
// the identity step. An out-of-range count blocks progression; it is never
// clamped.
func (w *Wizard) SetPlayers(ctx context.Context, id string, players int) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepPlayers || draft.SelectedSlot == nil {
		return draft, ErrWrongStep
	}

	ceiling := CapacityCeiling(draft.Game, draft.SelectedSlot)
	if players < game_constants.MinPlayers || players > ceiling {
		return draft, &CapacityError{Ceiling: ceiling}
	}

	draft.Players = players
	draft.TotalPrice = TotalPrice(draft.Game, players)
	draft.Step = models.StepIdentity
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitIdentity captures name and email and requests an OTP. A repeated
// submission requests a fresh code, which invalidates the previous one
// upstream, so any earlier verification is voided before anything is sent.
func (w *Wizard) SubmitIdentity(ctx context.Context, id, firstName, lastName, email string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepIdentity {
		return draft, ErrWrongStep
	}
	if utils.TrimEmpty(firstName) || utils.TrimEmpty(lastName) || utils.TrimEmpty(email) {
		return draft, ErrMissingFields
	}
	if !utils.IsValidEmail(email) {
		return draft, ErrInvalidEmail
	}

	draft.FirstName = firstName
	draft.LastName = lastName
	draft.Email = email
	draft.OTPSent = false
	draft.EmailVerified = false
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}

	if err := w.client.SendOTP(ctx, draft.Lang, email, firstName, lastName); err != nil {
		return draft, err
	}

	draft.OTPSent = true
	draft.Step = models.StepOTP
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ResendOTP re-runs the identity submission with the fields already on the
// draft.
func (w *Wizard) ResendOTP(ctx context.Context, id string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepOTP {
		return draft, ErrWrongStep
	}
	return w.SubmitIdentity(ctx, id, draft.FirstName, draft.LastName, draft.Email)
}

// VerifyOTP checks the entered code. Input is normalized to digits and
// capped at six characters before any length validation or upstream call.
func (w *Wizard) VerifyOTP(ctx context.Context, id, code string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step < models.StepOTP || !draft.OTPSent {
		return draft, ErrWrongStep
	}

	code = utils.NormalizeOTP(code)
	if len(code) != game_constants.OTPLength {
		return draft, ErrInvalidOTP
	}

	if err := w.client.VerifyOTP(ctx, draft.Lang, draft.Email, code); err != nil {
		return draft, err
	}

	draft.EmailVerified = true
	draft.Step = models.StepConfirm
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetDisclaimer records the disclaimer-acceptance flag. The detail view and
// the confirmation checkbox both land here.
func (w *Wizard) SetDisclaimer(ctx context.Context, id string, accepted bool) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	draft.DisclaimerAccepted = accepted
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetRequirements stores the free-text special requirements.
func (w *Wizard) SetRequirements(ctx context.Context, id, text string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	draft.SpecialRequirements = text
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Confirm creates the reservation and requests the payment session. If the
// reservation was already created on a previous attempt, only the payment
// call is repeated. The backend has the last word on capacity: its rejection
// surfaces here as the step-5 error.
func (w *Wizard) Confirm(ctx context.Context, id string) (*models.BookingDraft, *models.TokenPair, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if draft.Step != models.StepConfirm {
		return draft, nil, ErrWrongStep
	}
	if !draft.EmailVerified {
		return draft, nil, ErrNotVerified
	}
	if !draft.DisclaimerAccepted {
		return draft, nil, ErrDisclaimerRequired
	}
	if ceiling := CapacityCeiling(draft.Game, draft.SelectedSlot); draft.Players > ceiling {
		return draft, nil, &CapacityError{Ceiling: ceiling}
	}

	var tokens *models.TokenPair
	if draft.ReferenceNumber == "" {
		result, err := w.client.CreateReservation(ctx, draft.Lang, upstream.CreateReservationRequest{
			Game:                draft.GameID,
			Date:                draft.Date,
			Time:                draft.Time,
			Players:             draft.Players,
			SpecialRequirements: draft.SpecialRequirements,
			Email:               draft.Email,
			FirstName:           draft.FirstName,
			LastName:            draft.LastName,
		})
		if err != nil {
			return draft, nil, err
		}
		draft.ReservationID = result.Reservation.ID
		draft.ReferenceNumber = result.Reservation.ReferenceNumber
		tokens = result.Tokens
		draft.UpdatedAt = w.now()
		if err := w.store.Save(ctx, draft); err != nil {
			return nil, nil, err
		}
	}

	paymentURL, err := w.client.CreatePaymentSession(ctx, draft.Lang, draft.ReservationID)
	if err != nil {
		return draft, tokens, err
	}

	draft.PaymentURL = paymentURL
	draft.Step = models.StepDone
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, tokens, err
	}
	return draft, tokens, nil
}

// Back moves one step backwards without touching any entered data. The
// terminal step has no way back.
func (w *Wizard) Back(ctx context.Context, id string) (*models.BookingDraft, error) {
	draft, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step >= models.StepDone || draft.Step <= models.StepDateTime {
		return draft, ErrWrongStep
	}
	draft.Step--
	draft.UpdatedAt = w.now()
	if err := w.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
