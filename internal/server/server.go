package server

import (
	"net/http"
	"time"

	"botgate/internal/config"
	"botgate/internal/dataType"
	"botgate/internal/pipeline"
	"botgate/internal/utils"
)

// StartServer runs the gatekeeper in front of the protected content.
// Every request flows through the pipeline; the verdict decides between
// pass-through, redirect, and the configured exit action.
func StartServer(cfg *config.Config, pl *pipeline.Pipeline) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		reqData := ProcessRequestData(cfg, r)
		verdict := pl.Run(reqData)

		if !verdict.Allowed {
			WriteVerdict(w, r, cfg, verdict)
			return
		}
		if verdict.RedirectURL != "" {
			http.Redirect(w, r, verdict.RedirectURL, http.StatusFound)
			return
		}

		// The surrounding deployment serves the real content; the
		// standalone server just acknowledges the pass.
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			pl.Audit.LogError(reqData, "Error writing response: "+err.Error(), "StartServer")
		}
	})

	return http.ListenAndServe(":"+cfg.Port, nil)
}

// ProcessRequestData builds the immutable request snapshot the pipeline
// consumes.
func ProcessRequestData(cfg *config.Config, r *http.Request) dataType.VisitorRequest {
	query := make(map[string]string)
	for key, vals := range r.URL.Query() {
		if len(vals) > 0 {
			query[key] = vals[0]
		} else {
			query[key] = ""
		}
	}

	return dataType.VisitorRequest{
		RemoteIP:  utils.ClientIP(r, cfg.TestMode),
		UserAgent: r.UserAgent(),
		Accept:    r.Header.Get("Accept"),
		Host:      r.Host,
		Uri:       r.URL.RequestURI(),
		Query:     query,
		Now:       time.Now().Unix(),
	}
}
