package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDKey is the gin context key holding the browser session ID.
	SessionIDKey = "session_id"

	// SessionHeader carries the session ID in both directions. Clients echo
	// it back on every request; new clients get one issued.
	SessionHeader = "X-Session-ID"
)

// SessionMiddleware attaches an anonymous browser-session identity to every
// request. Carts and recent searches are keyed by it; no authentication is
// implied.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(SessionIDKey, sessionID)
		c.Writer.Header().Set(SessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session ID from gin context.
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetString(SessionIDKey)
	return sessionID, sessionID != ""
}
