package check

import (
	"fmt"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// AgentBlacklist blocks user agents containing any operator-listed
// token, case-insensitively.
func AgentBlacklist(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if token, ok := env.Lists.MatchAgent(reqData.UserAgent); ok {
		decision.Block(fmt.Sprintf("Blacklisted user agent: %s", token))
		return
	}
	decision.Pass()
}
