package middleware

import (
	"net/http"

	ginsessions "github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"skirmish/services/sessions"
)

// SessionIDKey is the cookie-session entry holding the opaque session id.
const SessionIDKey = "session_id"

// contextSessionKey is where AuthRequired leaves the loaded session for
// downstream handlers.
const contextSessionKey = "current_session"

// AuthRequired loads the caller's session from the Redis store on every
// request and aborts with 401 when it is missing or invalidated. The loaded
// session is left on the gin context for the handler.
func AuthRequired(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieSession := ginsessions.Default(c)
		id, _ := cookieSession.Get(SessionIDKey).(string)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, err := store.Load(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		SetCurrentSession(c, session)
		c.Next()
	}
}

// SetCurrentSession attaches the authenticated session to the request
// context. Exposed so tests can seed a session without the full middleware
// chain.
func SetCurrentSession(c *gin.Context, session *sessions.Session) {
	c.Set(contextSessionKey, session)
}

// CurrentSession returns the session AuthRequired attached to the request.
func CurrentSession(c *gin.Context) (*sessions.Session, bool) {
	value, exists := c.Get(contextSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*sessions.Session)
	return session, ok
}
