package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"questbook/models"
	"questbook/services/consent"
)

type ConsentController struct{}

func consentPayload(rec *models.ConsentRecord, present bool) gin.H {
	return gin.H{
		"consent":              rec,
		"banner_required":      !present,
		"initialize_analytics": consent.ShouldInitializeAnalytics(rec),
		"initialize_marketing": consent.ShouldInitializeMarketing(rec),
	}
}

// @Summary Returns the stored cookie-consent record
// @Description banner_required is true until the visitor makes a choice; no optional tracking may initialize before that.
// @Tags consent
// @Produce json
// @Success 200 {object} object{consent=object,banner_required=boolean}
// @Router /api/consent [get]
func (cc *ConsentController) Get(c *gin.Context) {
	rec, present := consent.Read(sessions.Default(c))
	c.JSON(http.StatusOK, consentPayload(rec, present))
}

// @Summary Accepts all cookie categories
// @Tags consent
// @Produce json
// @Success 200 {object} object{consent=object}
// @Router /api/consent/accept-all [post]
func (cc *ConsentController) AcceptAll(c *gin.Context) {
	rec, err := consent.Write(sessions.Default(c), consent.AcceptAll())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consent"})
		return
	}
	c.JSON(http.StatusOK, consentPayload(&rec, true))
}

// @Summary Rejects all optional cookie categories
// @Tags consent
// @Produce json
// @Success 200 {object} object{consent=object}
// @Router /api/consent/reject-all [post]
func (cc *ConsentController) RejectAll(c *gin.Context) {
	rec, err := consent.Write(sessions.Default(c), consent.RejectAll())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consent"})
		return
	}
	c.JSON(http.StatusOK, consentPayload(&rec, true))
}

// @Summary Saves a custom cookie-category selection
// @Description Necessary is always forced on; the record is replaced wholesale.
// @Tags consent
// @Accept json
// @Produce json
// @Param body body object{analytics=boolean,marketing=boolean,preferences=boolean} true "Category choices"
// @Success 200 {object} object{consent=object}
// @Router /api/consent [post]
func (cc *ConsentController) Save(c *gin.Context) {
	var req struct {
		Analytics   bool `json:"analytics"`
		Marketing   bool `json:"marketing"`
		Preferences bool `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rec, err := consent.Write(sessions.Default(c), models.ConsentRecord{
		Analytics:   req.Analytics,
		Marketing:   req.Marketing,
		Preferences: req.Preferences,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consent"})
		return
	}
	c.JSON(http.StatusOK, consentPayload(&rec, true))
}
