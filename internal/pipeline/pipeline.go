package pipeline

import (
	"botgate/internal/action"
	"botgate/internal/blacklist"
	"botgate/internal/check"
	"botgate/internal/config"
	"botgate/internal/dataType"
	"botgate/internal/geo"
	"botgate/internal/ratelimit"
	"botgate/internal/utils"
)

// Pipeline runs the fixed gate sequence for one request and produces
// the terminal verdict. The caller renders the verdict; no gate exits
// non-locally.
type Pipeline struct {
	Cfg     *config.Config
	Lists   *blacklist.Store
	Limiter *ratelimit.Limiter
	Geo     *geo.Resolver
	Audit   *utils.AuditLogger
}

func New(cfg *config.Config, lists *blacklist.Store, limiter *ratelimit.Limiter, resolver *geo.Resolver, audit *utils.AuditLogger) *Pipeline {
	return &Pipeline{Cfg: cfg, Lists: lists, Limiter: limiter, Geo: resolver, Audit: audit}
}

// checkFuncs is the gate order. Any gate may end the run; otherwise the
// request reaches the terminal Allowed state.
var checkFuncs = []check.CheckFunc{
	check.RequiredParameter,
	check.Headers,
	check.AgentBlacklist,
	check.IPBlacklist,
	check.RangeBlacklist,
	check.GeoFilter,
	check.RateLimit,
}

// Run executes the pipeline for one request snapshot.
func (p *Pipeline) Run(reqData dataType.VisitorRequest) action.Verdict {
	if p.Cfg.TestMode {
		p.Audit.LogEvent("Test mode enabled - skipping checks")
		return action.Verdict{Allowed: true}
	}

	env := &check.Env{
		Cfg:     p.Cfg,
		Lists:   p.Lists,
		Limiter: p.Limiter,
		Geo:     p.Geo.Session(reqData.RemoteIP),
		Audit:   p.Audit,
	}

	decision := action.NewDecision()
	for _, checkFunc := range checkFuncs {
		checkFunc(reqData, env, decision)
		if decision.State == action.Done {
			break
		}
	}

	verdict := decision.Verdict
	if !verdict.Allowed {
		verdict.Exit = p.Cfg.ExitBehavior
		p.Audit.LogBlock(reqData, verdict.Reason)
		return verdict
	}

	if verdict.RedirectURL == "" {
		// Full pass: record the geo-enriched visit.
		p.Audit.LogVisit(env.Geo.Record())
	}
	return verdict
}
