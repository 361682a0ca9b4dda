package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"neuroad-server/models"
	"neuroad-server/services"
)

// SessionCookieName is the cookie carrying the opaque session token. The
// same token is also accepted as a bearer header.
const SessionCookieName = "session_token"

const userContextKey = "user"

// SessionToken extracts the session token from the cookie or the
// Authorization header, cookie first.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// OptionalAuth resolves the session into the request context when present.
// Absent or invalid sessions stay anonymous; they are never an error here.
func OptionalAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := sessions.GetUserBySession(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AuthRequired rejects requests without a valid session.
func AuthRequired(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.GetUserBySession(SessionToken(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Not authenticated",
			})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// GetUser returns the authenticated user from the request context, if any.
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}

// GetUserID returns the authenticated user's id, or nil for anonymous
// requests.
func GetUserID(c *gin.Context) *string {
	user, ok := GetUser(c)
	if !ok {
		return nil
	}
	return &user.UserID
}
