// README: Session auth middleware (Bearer token → user ID in context).
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "auth_user_id"
	tokenKey  = "auth_token"
)

// SessionVerifier resolves a bearer token to the user it belongs to.
type SessionVerifier interface {
	Lookup(ctx context.Context, token string) (int64, error)
}

// Auth rejects requests without a valid session token and stores the caller's
// user ID and token on the context for handlers.
func Auth(sessions SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please log in"})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please log in"})
			return
		}

		userID, err := sessions.Lookup(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please log in"})
			return
		}

		c.Set(userIDKey, userID)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CallerUserID returns the authenticated user's ID, or 0 when unauthenticated.
func CallerUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// CallerToken returns the raw session token of the request.
func CallerToken(c *gin.Context) string {
	if v, ok := c.Get(tokenKey); ok {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
