// Package middleware embeds the gatekeeper pipeline into an existing
// HTTP stack instead of running the standalone server.
package middleware

import (
	"net/http"

	"botgate/internal/action"
	"botgate/internal/blacklist"
	"botgate/internal/config"
	"botgate/internal/geo"
	"botgate/internal/pipeline"
	"botgate/internal/ratelimit"
	"botgate/internal/server"
	"botgate/internal/utils"
)

// Options configures the embedded gatekeeper. Zero-value fields fall
// back to the configuration defaults and a file rate store.
type Options struct {
	Config    *config.Config
	RateStore ratelimit.Store
	Geo       geo.Provider
	Audit     *utils.AuditLogger
}

// Middleware wraps handlers with the decision pipeline.
type Middleware struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
}

// New builds a middleware, filling in any dependency the options leave
// unset.
func New(options Options) (*Middleware, error) {
	cfg := options.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.EnsureFiles(); err != nil {
		return nil, err
	}

	store := options.RateStore
	if store == nil {
		store = ratelimit.NewFileStore(cfg.Paths.RequestLog)
	}

	provider := options.Geo
	if provider == nil {
		provider = geo.NewAPIProvider()
	}

	audit := options.Audit

	lists := blacklist.NewStore(cfg.Paths.AgentsBlacklist, cfg.Paths.IPsBlacklist, cfg.Paths.IPsRangeBlacklist)
	limiter := ratelimit.NewLimiter(store, cfg.RateLimit.MaxRequests, cfg.RateLimit.TimeFrame)
	pl := pipeline.New(cfg, lists, limiter, geo.NewResolver(provider), audit)

	return &Middleware{cfg: cfg, pipeline: pl}, nil
}

// HandleRequest runs the pipeline for one request and returns the
// verdict without writing anything.
func (m *Middleware) HandleRequest(r *http.Request) action.Verdict {
	return m.pipeline.Run(server.ProcessRequestData(m.cfg, r))
}
