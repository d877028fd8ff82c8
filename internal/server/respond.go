package server

import (
	"math/rand"
	"net/http"

	"botgate/internal/action"
	"botgate/internal/config"
	"botgate/internal/dataType"
)

// WriteVerdict renders a Block verdict's exit action. Allow verdicts
// belong to the caller: it either serves the real content or performs
// the legitimate-user redirect.
func WriteVerdict(w http.ResponseWriter, r *http.Request, cfg *config.Config, verdict action.Verdict) {
	switch verdict.Exit {
	case dataType.ExitNotFound:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := notFoundTpl.Execute(w, cfg.NotFoundPage); err != nil {
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		}

	case dataType.ExitForbidden:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(forbiddenPage))

	case dataType.ExitCaptcha:
		data := struct{ A, B int }{A: 1 + rand.Intn(9), B: 1 + rand.Intn(9)}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := captchaTpl.Execute(w, data); err != nil {
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		}

	default: // redirect
		link := cfg.ExitLink
		if link == "" {
			link = "https://google.com"
		}
		http.Redirect(w, r, link, http.StatusFound)
	}
}
