package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"questbook/models"
)

// Session keys for the token pair the backend issues after a successful
// reservation flow.
const (
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

// SaveTokens stores an issued token pair in the visitor session.
func SaveTokens(session sessions.Session, tokens *models.TokenPair) error {
	if tokens == nil || tokens.Access == "" {
		return nil
	}
	session.Set(accessTokenKey, tokens.Access)
	session.Set(refreshTokenKey, tokens.Refresh)
	return session.Save()
}

// AccessToken returns the stored bearer token, dropping it when expired. The
// token is signed by the backend, so only the expiry claim is read here.
// Signature verification is the backend's job.
func AccessToken(c *gin.Context) string {
	session := sessions.Default(c)
	token, _ := session.Get(accessTokenKey).(string)
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
			session.Delete(accessTokenKey)
			session.Delete(refreshTokenKey)
			_ = session.Save()
			return ""
		}
	}
	return token
}
