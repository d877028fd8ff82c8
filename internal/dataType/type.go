package dataType

// VisitorRequest is the per-request snapshot handed to the decision
// pipeline. The transport layer builds it once; nothing mutates it after.
type VisitorRequest struct {
	RemoteIP  string
	UserAgent string
	Accept    string
	Host      string
	Uri       string
	Query     map[string]string
	Now       int64
}

// Exit behaviors for blocked visitors.
const (
	ExitRedirect  = "redirect"
	ExitNotFound  = "404"
	ExitForbidden = "403"
	ExitCaptcha   = "captcha"
)

// Behaviors for legitimate visitors that pass the parameter gate.
const (
	UserSamePage = "same_page"
	UserRedirect = "redirect"
)

// Rate window store backends.
const (
	RateStoreFile   = "file"
	RateStoreMemory = "memory"
	RateStoreRedis  = "redis"
)

// Geo lookup providers.
const (
	GeoProviderAPI  = "ip-api"
	GeoProviderMMDB = "mmdb"
)
