package check

import (
	"fmt"
	"strings"

	"botgate/internal/action"
	"botgate/internal/dataType"
)

// GeoFilter blocks visitors whose resolved country code is outside the
// configured allow list. Disabled filtering or a blank list passes
// everyone; a failed lookup resolves to the sentinel code "XX", which
// blocks unless the operator listed it.
func GeoFilter(reqData dataType.VisitorRequest, env *Env, decision *action.Decision) {
	if !env.Cfg.GeoFilter.Enabled || strings.TrimSpace(env.Cfg.GeoFilter.AllowedCountries) == "" {
		decision.Pass()
		return
	}

	country := env.Geo.Field("countryCode")
	for _, code := range strings.Split(env.Cfg.GeoFilter.AllowedCountries, ",") {
		if strings.TrimSpace(code) == country {
			decision.Pass()
			return
		}
	}

	decision.Block(fmt.Sprintf("Geo not matching filter: %s not in allowed list", country))
}
