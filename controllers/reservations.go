package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/services/i18n"
	"questbook/services/upstream"
)

type ReservationsController struct {
	Upstream *upstream.Client
	I18n     *i18n.Service
}

// @Summary Lists the visitor's reservations
// @Description An unauthenticated visitor gets an empty list, not an error.
// @Tags reservations
// @Produce json
// @Success 200 {object} object{reservations=array}
// @Failure 502 {object} object{error=string}
// @Router /api/reservations [get]
func (rc *ReservationsController) List(c *gin.Context) {
	token := middleware.AccessToken(c)

	reservations, err := rc.Upstream.Reservations(c.Request.Context(), middleware.Lang(c), token)
	if err != nil {
		lang := middleware.Lang(c)
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": rc.I18n.T(lang, "reservations.loadError", nil), "retry": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
