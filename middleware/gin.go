package middleware

import (
	"net/http"

	"botgate/internal/server"

	"github.com/gin-gonic/gin"
)

// Gin returns the gatekeeper as a gin handler.
func (m *Middleware) Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict := m.HandleRequest(c.Request)

		if !verdict.Allowed {
			server.WriteVerdict(c.Writer, c.Request, m.cfg, verdict)
			c.Abort()
			return
		}
		if verdict.RedirectURL != "" {
			c.Redirect(http.StatusFound, verdict.RedirectURL)
			c.Abort()
			return
		}
		c.Next()
	}
}
