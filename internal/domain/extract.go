package domain

import "net/url"

// DomainOf returns the authority (host[:port]) of raw exactly as written in
// the URL. URLs that do not parse, or that lack a scheme or host, map to the
// empty domain "".
func DomainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Host
}
