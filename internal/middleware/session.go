package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "lumira_session"

// GuestSession identifie la session de navigation qui porte le panier.
// Sans cookie, un identifiant est émis et posé pour 30 jours — pas de compte
// client, une session invitée suffit.
func GuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, 30*24*3600, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}
