package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/models"
	"questbook/services/catalog"
	"questbook/services/i18n"
	"questbook/services/upstream"
)

type GamesController struct {
	Catalog  *catalog.Service
	Upstream *upstream.Client
	I18n     *i18n.Service
}

func (gc *GamesController) load(c *gin.Context, lang string) ([]models.Game, error) {
	if c.Query("refresh") == "1" || c.Query("refresh") == "true" {
		return gc.Catalog.Load(c.Request.Context(), lang)
	}
	return gc.Catalog.Games(c.Request.Context(), lang)
}

// @Summary Lists the game catalog
// @Description Returns the localized game list with the filter set applied, plus per-category counts
// @Tags games
// @Produce json
// @Param lang query string false "Language code (en, es, uk)"
// @Param search query string false "Free-text search over title and description"
// @Param category query string false "Category filter, 'all' for none"
// @Param difficulty query string false "Difficulty filter, 'all' for none"
// @Param status query string false "Status filter, 'all' for none"
// @Param price_min query number false "Inclusive lower price bound"
// @Param price_max query number false "Inclusive upper price bound"
// @Param refresh query boolean false "Force a re-fetch from the booking API"
// @Success 200 {object} object{games=array,counts=object}
// @Failure 502 {object} object{error=string}
// @Router /api/games [get]
func (gc *GamesController) List(c *gin.Context) {
	lang := middleware.Lang(c)

	list, err := gc.load(c, lang)
	if err != nil {
		respondError(c, gc.I18n, err)
		return
	}

	filter := catalog.Filter{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Status:     c.Query("status"),
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		filter.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		filter.PriceMax = &v
	}

	c.JSON(http.StatusOK, gin.H{
		"games":  catalog.FilterGames(list, filter),
		"counts": catalog.CategoryCounts(list),
	})
}

// @Summary Fetches a single game
// @Tags games
// @Produce json
// @Param id path int true "Game id"
// @Success 200 {object} models.Game
// @Failure 404 {object} object{error=string}
// @Router /api/games/{id} [get]
func (gc *GamesController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	game, err := gc.Upstream.Game(c.Request.Context(), middleware.Lang(c), id)
	if err != nil {
		respondError(c, gc.I18n, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// @Summary Lists featured games
// @Tags games
// @Produce json
// @Success 200 {array} models.Game
// @Router /api/games/featured [get]
func (gc *GamesController) Featured(c *gin.Context) {
	list, err := gc.load(c, middleware.Lang(c))
	if err != nil {
		respondError(c, gc.I18n, err)
		return
	}
	c.JSON(http.StatusOK, catalog.Featured(list))
}
