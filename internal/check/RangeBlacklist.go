package check

import (
	"fmt"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// RangeBlacklist blocks visitors whose address contains an
// operator-listed prefix string. Matching is substring containment over
// the textual IP, not CIDR arithmetic.
func RangeBlacklist(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if token, ok := env.Lists.MatchRange(reqData.RemoteIP); ok {
		decision.Block(fmt.Sprintf("Blacklisted IP range matched: %s", token))
		return
	}
	decision.Pass()
}
