package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/services/consent"
	"questbook/services/i18n"
)

type LanguageController struct {
	I18n *i18n.Service
}

// @Summary Returns the active language and the supported set
// @Tags language
// @Produce json
// @Success 200 {object} object{language=string,supported=array}
// @Router /api/language [get]
func (lc *LanguageController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"language":  middleware.Lang(c),
		"supported": lc.I18n.Supported(),
	})
}

// @Summary Changes the active language
// @Description Persists the preference and notifies language-change subscribers (the catalog re-fetches).
// @Tags language
// @Accept json
// @Produce json
// @Param body body object{language=string} true "Language code"
// @Success 200 {object} object{language=string}
// @Failure 400 {object} object{error=string}
// @Router /api/language [put]
func (lc *LanguageController) Set(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !lc.I18n.IsSupported(req.Language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language"})
		return
	}

	session := sessions.Default(c)
	session.Set(consent.LanguageKey, req.Language)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	lc.I18n.NotifyChange(req.Language)
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}

// @Summary Returns the localized string table for a language
// @Tags language
// @Produce json
// @Param key query []string false "Message keys to resolve; may repeat"
// @Success 200 {object} object{language=string,messages=object}
// @Router /api/language/messages [get]
func (lc *LanguageController) Messages(c *gin.Context) {
	lang := middleware.Lang(c)
	keys := c.QueryArray("key")

	messages := make(map[string]string, len(keys))
	for _, key := range keys {
		messages[key] = lc.I18n.T(lang, key, nil)
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "messages": messages})
}
