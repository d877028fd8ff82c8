package check

import (
	"botgate/internal/action"
	"botgate/internal/blacklist"
	"botgate/internal/config"
	"botgate/internal/dataType"
	"botgate/internal/geo"
	"botgate/internal/ratelimit"
	"botgate/internal/utils"
)

// Env carries the per-execution dependencies every gate shares. Geo is
// the memoizing session scoped to this one pipeline run.
type Env struct {
	Cfg     *config.Config
	Lists   *blacklist.Store
	Limiter *ratelimit.Limiter
	Geo     *geo.Session
	Audit   *utils.AuditLogger
}

// CheckFunc is one gate of the pipeline. A gate either calls
// decision.Pass or ends the run with a terminal verdict.
type CheckFunc func(dataType.VisitorRequest, *Env, *action.Decision)
