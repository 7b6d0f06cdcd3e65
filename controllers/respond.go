package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/services/booking"
	"questbook/services/i18n"
	"questbook/services/upstream"
)

// respondError converts a wizard/upstream failure into the user-visible
// feedback contract: validation problems and business rejections are 4xx
// with a localized message, transport problems are a retryable 502, and
// nothing is ever retried on the server's own initiative.
func respondError(c *gin.Context, svc *i18n.Service, err error) {
	lang := middleware.Lang(c)
	t := func(key string, args map[string]interface{}) string {
		return svc.T(lang, key, args)
	}

	var capErr *booking.CapacityError
	if errors.As(err, &capErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   t("booking.capacityExceeded", map[string]interface{}{"Ceiling": capErr.Ceiling}),
			"ceiling": capErr.Ceiling,
		})
		return
	}

	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No booking in progress"})
	case errors.Is(err, booking.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": t("booking.missingFields", nil)})
	case errors.Is(err, booking.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": t("booking.invalidEmail", nil)})
	case errors.Is(err, booking.ErrInvalidDate), errors.Is(err, booking.ErrPastDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": t("booking.slotsError", nil)})
	case errors.Is(err, booking.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": t("booking.otpInvalid", nil)})
	case errors.Is(err, booking.ErrDisclaimerRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": t("booking.disclaimerRequired", nil)})
	case errors.Is(err, booking.ErrNotVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": t("booking.otpFailed", nil)})
	default:
		respondUpstreamError(c, t, err)
	}
}

func respondUpstreamError(c *gin.Context, t func(string, map[string]interface{}) string, err error) {
	var apiErr *upstream.APIError
	if !errors.As(err, &apiErr) {
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": t("games.loadError", nil), "retry": true})
		return
	}

	switch apiErr.Kind {
	case upstream.ErrNotYetAvailable:
		c.JSON(http.StatusConflict, gin.H{
			"error": t("booking.notYetAvailable", map[string]interface{}{"Reason": apiErr.Message}),
			"info":  true,
		})
	case upstream.ErrForbidden:
		// Anti-forgery rejection: the client already refreshed its token,
		// the visitor just has to press the button again.
		c.JSON(http.StatusForbidden, gin.H{"error": apiErr.Message, "retry": true})
	case upstream.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": apiErr.Message})
	case upstream.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": apiErr.Message})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": apiErr.Message})
	}
}
