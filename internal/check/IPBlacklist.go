package check

import (
	"fmt"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// IPBlacklist blocks visitors whose address appears verbatim in the IP
// block list.
func IPBlacklist(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if token, ok := env.Lists.MatchIP(reqData.RemoteIP); ok {
		decision.Block(fmt.Sprintf("Blacklisted IP matched: %s", token))
		return
	}
	decision.Pass()
}
