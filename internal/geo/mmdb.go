package geo

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// MMDBProvider answers lookups from a local MaxMind database instead of
// the network service. Same Record shape, same fallback path.
type MMDBProvider struct {
	reader *geoip2.Reader
}

func OpenMMDB(path string) (*MMDBProvider, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &MMDBProvider{reader: reader}, nil
}

func (p *MMDBProvider) Close() error {
	return p.reader.Close()
}

func (p *MMDBProvider) Lookup(ip string) (Record, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Record{}, fmt.Errorf("unparsable IP %q", ip)
	}
	city, err := p.reader.City(parsed)
	if err != nil {
		return Record{}, err
	}
	if city.Country.IsoCode == "" {
		return Record{}, fmt.Errorf("no country data for %s", ip)
	}

	rec := Record{
		Status:      "success",
		Country:     city.Country.Names["en"],
		CountryCode: city.Country.IsoCode,
		City:        city.City.Names["en"],
		Timezone:    city.Location.TimeZone,
		Query:       ip,
	}
	if len(city.Subdivisions) > 0 {
		rec.Region = city.Subdivisions[0].IsoCode
		rec.RegionName = city.Subdivisions[0].Names["en"]
	}
	if rec.City == "" {
		rec.City = "Unknown"
	}
	return rec, nil
}
