package check

import (
	"fmt"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// RequiredParameter blocks visitors that arrive without the configured
// query parameter. A visitor that carries it is legitimate: with
// user_behavior=redirect the run ends here with a redirect and the
// remaining gates never execute (deliberate ordering policy); with
// same_page the run continues.
func RequiredParameter(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if !env.Cfg.RequireParameter.Enabled || env.Cfg.TestMode {
		decision.Pass()
		return
	}

	name := env.Cfg.RequireParameter.ParameterName
	if _, ok := reqData.Query[name]; !ok {
		decision.Block(fmt.Sprintf("Missing required parameter: %s", name))
		return
	}

	if env.Cfg.UserBehavior == dataType.UserRedirect && env.Cfg.UserRedirect != "" {
		env.Audit.LogEvent(fmt.Sprintf("Legitimate user redirected to: %s", env.Cfg.UserRedirect))
		decision.AllowRedirect(env.Cfg.UserRedirect)
		return
	}

	env.Audit.LogEvent("Legitimate user allowed to continue")
	decision.Pass()
}
