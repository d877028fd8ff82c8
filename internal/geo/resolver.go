package geo

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	defaultBaseURL = "http://ip-api.com"
	lookupFields   = "status,message,country,countryCode,region,regionName,city,timezone,currency,query,proxy,hosting"
	lookupTimeout  = 5 * time.Second
)

// Provider resolves one IP to a Record. A non-success lookup is an
// error; the Session turns errors into the fallback record.
type Provider interface {
	Lookup(ip string) (Record, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ip string) (Record, error)

func (f ProviderFunc) Lookup(ip string) (Record, error) {
	return f(ip)
}

// APIProvider queries ip-api.com. The client carries a hard 5 second
// timeout and skips TLS verification, a deliberate leniency for this
// lookup endpoint.
type APIProvider struct {
	BaseURL string
	client  *http.Client
}

func NewAPIProvider() *APIProvider {
	return &APIProvider{
		BaseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: lookupTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

func (p *APIProvider) Lookup(ip string) (Record, error) {
	url := fmt.Sprintf("%s/json/%s?fields=%s", p.BaseURL, ip, lookupFields)
	resp, err := p.client.Get(url)
	if err != nil {
		return Record{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return Record{}, err
	}
	if rec.Status != "success" {
		return Record{}, fmt.Errorf("lookup for %s returned status %q: %s", ip, rec.Status, rec.Message)
	}
	return rec, nil
}

// Resolver hands out per-execution Sessions over a Provider.
type Resolver struct {
	provider Provider
}

func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Session returns the memoizing scope for one pipeline execution.
func (r *Resolver) Session(ip string) *Session {
	return &Session{provider: r.provider, ip: ip}
}

// Session resolves the visitor IP at most once and caches the outcome,
// success or fallback, for the rest of the pipeline execution. It is an
// explicit value threaded through the run, not process-wide state.
type Session struct {
	provider Provider
	ip       string
	once     sync.Once
	record   Record
}

func (s *Session) Record() Record {
	s.once.Do(func() {
		rec, err := s.provider.Lookup(s.ip)
		if err != nil {
			rec = FallbackRecord(s.ip)
		}
		s.record = rec
	})
	return s.record
}

// Field resolves once, then answers from the cached record.
func (s *Session) Field(name string) string {
	return s.Record().Field(name)
}
