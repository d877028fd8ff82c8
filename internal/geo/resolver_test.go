package geo

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestAPIProviderSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Iraq","countryCode":"IQ","city":"Baghdad","query":"1.2.3.4"}`))
	}))
	defer ts.Close()

	p := NewAPIProvider()
	p.BaseURL = ts.URL

	rec, err := p.Lookup("1.2.3.4")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec.CountryCode != "IQ" || rec.Country != "Iraq" || rec.City != "Baghdad" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestAPIProviderNonSuccessStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range","query":"10.0.0.1"}`))
	}))
	defer ts.Close()

	p := NewAPIProvider()
	p.BaseURL = ts.URL

	if _, err := p.Lookup("10.0.0.1"); err == nil {
		t.Errorf("fail status must surface as an error")
	}
}

func TestSessionResolvesOnce(t *testing.T) {
	var calls int32
	provider := ProviderFunc(func(ip string) (Record, error) {
		atomic.AddInt32(&calls, 1)
		return Record{Status: "success", Country: "Libya", CountryCode: "LY", City: "Tripoli", Query: ip}, nil
	})

	sess := NewResolver(provider).Session("5.6.7.8")
	if got := sess.Field("countryCode"); got != "LY" {
		t.Errorf("countryCode = %q", got)
	}
	if got := sess.Field("city"); got != "Tripoli" {
		t.Errorf("city = %q", got)
	}
	if got := sess.Field("query"); got != "5.6.7.8" {
		t.Errorf("query = %q", got)
	}
	if calls != 1 {
		t.Errorf("expected exactly one outbound lookup, got %d", calls)
	}
}

func TestSessionFallbackOnFailure(t *testing.T) {
	var calls int32
	provider := ProviderFunc(func(ip string) (Record, error) {
		atomic.AddInt32(&calls, 1)
		return Record{}, http.ErrHandlerTimeout
	})

	sess := NewResolver(provider).Session("9.9.9.9")
	if got := sess.Field("countryCode"); got != "XX" {
		t.Errorf("expected sentinel countryCode XX, got %q", got)
	}
	if got := sess.Field("country"); got != "Unknown" {
		t.Errorf("expected sentinel country, got %q", got)
	}
	if got := sess.Field("query"); got != "9.9.9.9" {
		t.Errorf("fallback query should carry the visitor IP, got %q", got)
	}
	// The failure is cached too; no retry.
	if calls != 1 {
		t.Errorf("expected one attempt, got %d", calls)
	}
}

func TestRecordFieldNames(t *testing.T) {
	rec := Record{Proxy: true, Timezone: "Asia/Baghdad"}
	if got := rec.Field("proxy"); got != "true" {
		t.Errorf("proxy = %q", got)
	}
	if got := rec.Field("timezone"); got != "Asia/Baghdad" {
		t.Errorf("timezone = %q", got)
	}
	if got := rec.Field("no_such_field"); got != "unknown" {
		t.Errorf("unknown field = %q", got)
	}
}
