// auth.go - Session authentication middleware
//
// Authentication Flow:
// 1. Read the session cookie from the request
// 2. Validate its signature and look up the server-side session
// 3. Store the session in the Gin context for handlers
// 4. Abort with 401 JSON if the cookie is missing or invalid

package middleware // Declares the package name

import (
	"net/http" // HTTP status codes

	"go-health-advisor/session" // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
)

// sessionKey is the Gin context key the authenticated session is stored under.
const sessionKey = "session"

// SessionRequired returns middleware that gates protected API routes. API
// clients get a 401 JSON body rather than a redirect.
func SessionRequired(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName) // Read the session cookie
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please login first"})
			return
		}

		sess, ok := sessions.Get(cookie) // Validate and look up server-side state
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please login first"})
			return
		}

		c.Set(sessionKey, sess) // Make the session available to handlers
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionRequired, if any.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
