package middleware

import (
	"net/http"

	"botgate/internal/server"
)

// HTTP wraps a plain net/http handler. Blocked visitors get the
// configured exit action; legitimate redirects end the request; allowed
// visitors reach the next handler.
func (m *Middleware) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict := m.HandleRequest(r)

		if !verdict.Allowed {
			server.WriteVerdict(w, r, m.cfg, verdict)
			return
		}
		if verdict.RedirectURL != "" {
			http.Redirect(w, r, verdict.RedirectURL, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
