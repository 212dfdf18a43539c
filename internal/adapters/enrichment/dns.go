package enrichment

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/phishinv/phish-investigator/internal/ports"
)

// DefaultTimeout bounds a single enrichment lookup
const DefaultTimeout = 3 * time.Second

// Resolver performs best-effort DNS enrichment for a registrable domain
//
// Lookups annotate the investigation record only; they never block a
// submission beyond the configured timeout and never fail it.
type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// NewResolver creates a DNS enrichment adapter with the given lookup timeout
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
}

// Resolve looks up the domain's address and, opportunistically, its
// nameservers. The address lookup failing fails the enrichment; a
// nameserver lookup failure only leaves Nameservers empty.
func (r *Resolver) Resolve(ctx context.Context, domain string) (*ports.Enrichment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.resolver.LookupHost(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("dns lookup for %s: %w", domain, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("dns lookup for %s: no addresses", domain)
	}

	enr := &ports.Enrichment{IP: addrs[0]}

	if records, err := r.resolver.LookupNS(ctx, domain); err == nil {
		for _, ns := range records {
			enr.Nameservers = append(enr.Nameservers, ns.Host)
		}
	}

	return enr, nil
}
