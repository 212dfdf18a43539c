package urlparts

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Parts is the public-suffix-aware decomposition of a URL's host.
//
// Suffix is the full public suffix ("co.uk"), TLD its last label ("uk").
// The distinction matters for multi-part suffixes: the registrable domain for
// "www.example.co.uk" is "example.co.uk", not "co.uk".
type Parts struct {
	RegistrableDomain string // e.g., "example.co.uk"
	Subdomain         string // e.g., "www" or "a.b"; empty if none
	Suffix            string // e.g., "co.uk"
	TLD               string // e.g., "uk"
}

// Extract decomposes a URL into its registrable domain, subdomain and public
// suffix. It fails gracefully: unparsable input, a missing host or an
// IP-literal host yields zero Parts rather than an error. Callers must treat
// an empty RegistrableDomain as unknown.
func Extract(rawURL string) Parts {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Parts{}
	}

	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "" || net.ParseIP(host) != nil {
		return Parts{}
	}

	suffix, _ := publicsuffix.PublicSuffix(host)

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Host is itself a public suffix (e.g., "co.uk"): no registrable domain
		return Parts{Suffix: suffix, TLD: lastLabel(suffix)}
	}

	subdomain := strings.TrimSuffix(strings.TrimSuffix(host, registrable), ".")

	return Parts{
		RegistrableDomain: registrable,
		Subdomain:         subdomain,
		Suffix:            suffix,
		TLD:               lastLabel(suffix),
	}
}

// SubdomainDepth returns the number of dot-separated subdomain labels
func (p Parts) SubdomainDepth() int {
	if p.Subdomain == "" {
		return 0
	}
	return len(strings.Split(p.Subdomain, "."))
}

func lastLabel(suffix string) string {
	if suffix == "" {
		return ""
	}
	labels := strings.Split(suffix, ".")
	return labels[len(labels)-1]
}
