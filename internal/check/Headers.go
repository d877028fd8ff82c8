package check

import (
	"fmt"
	"strings"

	"botgate/internal/action"
	"botgate/internal/dataType"
	"botgate/internal/utils"
)

// toolSignatures are user-agent substrings of HTTP tools and scanners.
// The keyword scan runs before the Accept check; first failure wins.
var toolSignatures = []string{
	"python", "curl", "wget", "libwww-perl",
	"zgrab", "nmap", "nikto", "dalvik",
	"scanbot", "crawler", "spider", "scraper",
}

// Headers applies the non-browser heuristics: tool signatures in the
// user agent, then an Accept header that must ask for HTML.
func Headers(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if !env.Cfg.HeaderCheck.Enabled {
		decision.Pass()
		return
	}

	agent := strings.ToLower(reqData.UserAgent)
	for _, keyword := range toolSignatures {
		if strings.Contains(agent, keyword) {
			decision.Block(fmt.Sprintf("Tool-based bot detected: %s", keyword))
			return
		}
	}

	if !strings.Contains(reqData.Accept, "text/html") {
		decision.Block("Non-browser request")
		return
	}

	if env.Cfg.HeaderCheck.DetectKnownBots && utils.IsKnownBotAgent(reqData.UserAgent) {
		decision.Block("Known bot user agent")
		return
	}

	decision.Pass()
}
