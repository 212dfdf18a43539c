package ports

import "context"

// Enrichment carries the best-effort lookup results for a domain
type Enrichment struct {
	IP          string
	Nameservers []string
}

// Enricher defines the contract for optional domain enrichment lookups
//
// Lookups are best-effort annotation only: implementations must bound their
// own network I/O (the passed context carries the submission deadline) and
// callers downgrade any failure to a note on the record.
type Enricher interface {
	Resolve(ctx context.Context, domain string) (*Enrichment, error)
}
