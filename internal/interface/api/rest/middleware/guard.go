package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/session"
)

const CtxSession = "session"

// SessionGuard runs the full guard check on every protected request: no
// stored token means no network call, a declined token means redirect. No
// error text reaches the user either way; the stored token is left in place.
func SessionGuard(guard ports.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := guard.Check(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"redirect": "/login"},
			)
			return
		}

		c.Set(CtxSession, s)

		c.Next()
	}
}

// SessionFromCtx pulls the session the guard attached.
func SessionFromCtx(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}
