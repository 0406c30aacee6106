package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elinacho/lumiskin-backend/internal/errors"
	"github.com/elinacho/lumiskin-backend/pkg/redis"
	"github.com/elinacho/lumiskin-backend/pkg/util"
)

// Context keys for user information
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Authenticate validates the session token (required).
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization format")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			// WebSocket clients can't set headers; accept a query token.
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "Please log in")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateSessionToken(token, m.secret)
		if err != nil {
			log.Warn("Session token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Your session has expired")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid session token")
			}
			c.Abort()
			return
		}

		// A revocation-check failure must not lock users out; only a
		// positive result blocks the request.
		if revoked, err := redis.IsSessionTokenRevoked(c.Request.Context(), token); err == nil && revoked {
			log.Warn("Rejected revoked session token", map[string]interface{}{
				"user_id": claims.UserID,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "You have been logged out")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set("session_token", token)

		log.Debug("User authenticated successfully", map[string]interface{}{
			"user_id": claims.UserID,
		})
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from gin context.
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

// GetSessionToken returns the raw token that authenticated this request.
func GetSessionToken(c *gin.Context) string {
	return c.GetString("session_token")
}
