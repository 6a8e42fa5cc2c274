package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionCookie = "cart_session"
	CartSessionKey    = "cart_session"

	// one year, carts should survive casual browsing gaps
	cartSessionMaxAge = 365 * 24 * 60 * 60
)

// CartSession guarantees every request carries a cart session id. Guests get a
// minted id on first contact; the cookie keeps the same cart across visits.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CartSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(CartSessionCookie, sessionID, cartSessionMaxAge, "/", "", false, true)
		}

		c.Set(CartSessionKey, sessionID)
		c.Next()
	}
}
