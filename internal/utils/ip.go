package utils

import (
	"net"
	"net/http"
	"strings"
)

// forwardHeaders is the resolution order for the visitor address behind
// proxies. First non-empty header wins; a comma-separated value yields
// its first segment.
var forwardHeaders = []string{
	"Client-IP",
	"X-Forwarded-For",
	"X-Forwarded",
	"X-Cluster-Client-IP",
	"Forwarded-For",
	"Forwarded",
}

// ClientIP resolves the visitor IP for a request. In test mode the
// address is normalized to loopback.
func ClientIP(r *http.Request, testMode bool) string {
	ip := ""
	for _, name := range forwardHeaders {
		if val := r.Header.Get(name); val != "" {
			if strings.Contains(val, ",") {
				parts := strings.Split(val, ",")
				val = strings.TrimSpace(parts[0])
			}
			ip = val
			break
		}
	}

	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		} else {
			ip = host
		}
	}

	if testMode && ip != "127.0.0.1" && ip != "::1" {
		return "127.0.0.1"
	}
	return ip
}
