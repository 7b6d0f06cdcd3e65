package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"questbook/config"
)

const sessionName = "questbook_session"

// SetUpMiddleware wires the cookie session and CORS policy.
func SetUpMiddleware(r *gin.Engine, cfg *config.Config) {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((90 * 24 * time.Hour).Seconds()),
		Secure:   cfg.Prod,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	allowCredentials := true
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Language"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))
}
