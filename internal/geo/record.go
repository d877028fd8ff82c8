package geo

import "strconv"

// Record is one geo lookup result in the shape ip-api.com returns.
type Record struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
	RegionName  string `json:"regionName"`
	City        string `json:"city"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
	Query       string `json:"query"`
	Proxy       bool   `json:"proxy"`
	Hosting     bool   `json:"hosting"`
}

// FallbackRecord is the sentinel cached when resolution fails, times
// out, or reports a non-success status. It keeps field lookups cheap and
// the pipeline alive.
func FallbackRecord(ip string) Record {
	return Record{
		Country:     "Unknown",
		CountryCode: "XX",
		City:        "Unknown",
		Query:       ip,
	}
}

// Field returns a named field as a string, "unknown" for names the
// record does not carry.
func (r Record) Field(name string) string {
	switch name {
	case "status":
		return r.Status
	case "message":
		return r.Message
	case "country":
		return r.Country
	case "countryCode":
		return r.CountryCode
	case "region":
		return r.Region
	case "regionName":
		return r.RegionName
	case "city":
		return r.City
	case "timezone":
		return r.Timezone
	case "currency":
		return r.Currency
	case "query":
		return r.Query
	case "proxy":
		return strconv.FormatBool(r.Proxy)
	case "hosting":
		return strconv.FormatBool(r.Hosting)
	default:
		return "unknown"
	}
}
