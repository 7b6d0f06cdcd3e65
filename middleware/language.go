package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"questbook/services/consent"
	"questbook/services/i18n"
)

const langKey = "lang"

// Language resolves the active language for the request: explicit ?lang=
// wins, then the stored session preference, then Accept-Language, then the
// default.
func Language(svc *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		stored, _ := session.Get(consent.LanguageKey).(string)

		lang := svc.Resolve(c.Query("lang"), stored, c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Next()
	}
}

// Lang returns the language resolved for this request.
func Lang(c *gin.Context) string {
	if lang, ok := c.Get(langKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return "en"
}
