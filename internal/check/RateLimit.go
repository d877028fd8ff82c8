package check

import (
	"fmt"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// RateLimit enforces the global sliding-window cap. The window is
// shared by all visitors of the deployment.
func RateLimit(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if !env.Cfg.RateLimit.Enabled {
		decision.Pass()
		return
	}

	if !env.Limiter.Allow(reqData.Now) {
		decision.Block(fmt.Sprintf("Rate limit exceeded: %d requests in %ds",
			env.Limiter.MaxRequests, env.Limiter.TimeFrame))
		return
	}
	decision.Pass()
}
