package utils

import (
	"fmt"

	"github.com/mssola/useragent"
)

// SummarizeUserAgent collapses a browser user agent into its parsed
// components for log lines. Non-Mozilla strings pass through untouched.
func SummarizeUserAgent(inputUA string) string {
	if len(inputUA) < 8 || inputUA[:8] != "Mozilla/" {
		return inputUA
	}

	ua := useragent.New(inputUA)

	engine, engineVersion := ua.Engine()
	browser, browserVersion := ua.Browser()

	return fmt.Sprintf("Platform:%v,OS:%v,Engine:%v,EngineVersion:%v,Browser:%v,BrowserVersion:%v,Bot:%v",
		ua.Platform(), ua.OS(), engine, engineVersion, browser, browserVersion, ua.Bot())
}

// IsKnownBotAgent reports whether the parser identifies the user agent
// as a crawler.
func IsKnownBotAgent(inputUA string) bool {
	return useragent.New(inputUA).Bot()
}
