package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/models"
	"questbook/services/booking"
	"questbook/services/i18n"
)

const draftSessionKey = "draftID"

type BookingController struct {
	Wizard *booking.Wizard
	I18n   *i18n.Service
}

func (bc *BookingController) draftID(c *gin.Context) (string, bool) {
	id, _ := sessions.Default(c).Get(draftSessionKey).(string)
	return id, id != ""
}

func (bc *BookingController) respondDraft(c *gin.Context, draft *models.BookingDraft) {
	lang := middleware.Lang(c)
	c.JSON(http.StatusOK, gin.H{
		"draft":       draft,
		"ceiling":     booking.CapacityCeiling(draft.Game, draft.SelectedSlot),
		"total_label": bc.I18n.T(lang, "booking.total", nil),
	})
}

// @Summary Starts a booking wizard for a game
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{game_id=integer} true "Game to book"
// @Success 200 {object} object{draft=object}
// @Failure 404 {object} object{error=string}
// @Router /api/booking [post]
func (bc *BookingController) Start(c *gin.Context) {
	var req struct {
		GameID int `json:"game_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.GameID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id is required"})
		return
	}

	draft, err := bc.Wizard.Start(c.Request.Context(), middleware.Lang(c), req.GameID)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}

	session := sessions.Default(c)
	session.Set(draftSessionKey, draft.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Returns the wizard state
// @Tags booking
// @Produce json
// @Success 200 {object} object{draft=object}
// @Failure 404 {object} object{error=string}
// @Router /api/booking [get]
func (bc *BookingController) Get(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	draft, err := bc.Wizard.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Picks a date and fetches its time slots
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{date=string} true "Calendar date, YYYY-MM-DD"
// @Success 200 {object} object{draft=object}
// @Failure 400 {object} object{error=string}
// @Router /api/booking/date [post]
func (bc *BookingController) SelectDate(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	draft, err := bc.Wizard.SelectDate(c.Request.Context(), id, req.Date)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Picks a time slot
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{time=string} true "Slot time, HH:MM"
// @Success 200 {object} object{draft=object}
// @Failure 409 {object} object{error=string}
// @Router /api/booking/time [post]
func (bc *BookingController) SelectTime(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time is required"})
		return
	}

	draft, err := bc.Wizard.SelectTime(c.Request.Context(), id, req.Time)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Sets the player count
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{players=integer} true "Player count within [1, ceiling]"
// @Success 200 {object} object{draft=object}
// @Failure 409 {object} object{error=string,ceiling=integer}
// @Router /api/booking/players [post]
func (bc *BookingController) SetPlayers(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		Players int `json:"players"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "players is required"})
		return
	}

	draft, err := bc.Wizard.SetPlayers(c.Request.Context(), id, req.Players)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Submits identity and requests an email verification code
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{first_name=string,last_name=string,email=string} true "Identity fields"
// @Success 200 {object} object{draft=object,message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/booking/identity [post]
func (bc *BookingController) SubmitIdentity(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bc.I18n.T(middleware.Lang(c), "booking.missingFields", nil)})
		return
	}

	draft, err := bc.Wizard.SubmitIdentity(c.Request.Context(), id, req.FirstName, req.LastName, req.Email)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":   draft,
		"message": bc.I18n.T(middleware.Lang(c), "booking.otpSent", nil),
	})
}

// @Summary Re-sends the verification code
// @Tags booking
// @Produce json
// @Success 200 {object} object{draft=object,message=string}
// @Router /api/booking/resend-otp [post]
func (bc *BookingController) ResendOTP(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	draft, err := bc.Wizard.ResendOTP(c.Request.Context(), id)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":   draft,
		"message": bc.I18n.T(middleware.Lang(c), "booking.otpSent", nil),
	})
}

// @Summary Verifies the 6-digit email code
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{otp=string} true "Verification code"
// @Success 200 {object} object{draft=object,message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/booking/verify-otp [post]
func (bc *BookingController) VerifyOTP(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		OTP string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bc.I18n.T(middleware.Lang(c), "booking.otpInvalid", nil)})
		return
	}

	draft, err := bc.Wizard.VerifyOTP(c.Request.Context(), id, req.OTP)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":   draft,
		"message": bc.I18n.T(middleware.Lang(c), "booking.emailVerified", nil),
	})
}

// @Summary Records disclaimer acceptance
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{accepted=boolean} true "Acceptance flag"
// @Success 200 {object} object{draft=object}
// @Router /api/booking/disclaimer [post]
func (bc *BookingController) SetDisclaimer(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accepted is required"})
		return
	}

	draft, err := bc.Wizard.SetDisclaimer(c.Request.Context(), id, req.Accepted)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Stores free-text special requirements
// @Tags booking
// @Accept json
// @Produce json
// @Param body body object{special_requirements=string} true "Special requirements"
// @Success 200 {object} object{draft=object}
// @Router /api/booking/requirements [post]
func (bc *BookingController) SetRequirements(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	var req struct {
		SpecialRequirements string `json:"special_requirements"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	draft, err := bc.Wizard.SetRequirements(c.Request.Context(), id, req.SpecialRequirements)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}

// @Summary Confirms the booking and returns the payment redirect URL
// @Description Creates the reservation and a payment session. Any issued auth tokens are stored in the session.
// @Tags booking
// @Produce json
// @Success 200 {object} object{draft=object,payment_url=string,message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/booking/confirm [post]
func (bc *BookingController) Confirm(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}

	draft, tokens, err := bc.Wizard.Confirm(c.Request.Context(), id)
	if tokens != nil {
		if saveErr := middleware.SaveTokens(sessions.Default(c), tokens); saveErr != nil {
			c.Error(saveErr)
		}
	}
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}

	lang := middleware.Lang(c)
	c.JSON(http.StatusOK, gin.H{
		"draft":       draft,
		"payment_url": draft.PaymentURL,
		"message": bc.I18n.T(lang, "booking.referenceNumber", map[string]interface{}{
			"Number": draft.ReferenceNumber,
		}),
	})
}

// @Summary Steps the wizard backwards
// @Tags booking
// @Produce json
// @Success 200 {object} object{draft=object}
// @Failure 409 {object} object{error=string}
// @Router /api/booking/back [post]
func (bc *BookingController) Back(c *gin.Context) {
	id, ok := bc.draftID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
		return
	}
	draft, err := bc.Wizard.Back(c.Request.Context(), id)
	if err != nil {
		respondError(c, bc.I18n, err)
		return
	}
	bc.respondDraft(c, draft)
}
