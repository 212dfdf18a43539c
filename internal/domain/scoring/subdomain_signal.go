package scoring

import (
	"fmt"

	"github.com/phishinv/phish-investigator/internal/domain"
)

const (
	subdomainWeight   = 6
	maxSubdomainDepth = 1
)

// SubdomainSignal flags deep subdomain nesting, often used to push a
// legitimate-looking label in front of the real registrable domain
type SubdomainSignal struct{}

// NewSubdomainSignal creates a new subdomain-nesting signal
func NewSubdomainSignal() *SubdomainSignal {
	return &SubdomainSignal{}
}

// Name returns the signal name
func (s *SubdomainSignal) Name() string {
	return "Subdomain Nesting"
}

// Evaluate flags hosts with two or more subdomain labels
func (s *SubdomainSignal) Evaluate(u URL) *domain.SignalHit {
	depth := u.Parts.SubdomainDepth()
	if depth <= maxSubdomainDepth {
		return nil
	}

	return &domain.SignalHit{
		Signal:   "SUBDOMAIN_NESTING",
		Points:   subdomainWeight,
		Evidence: fmt.Sprintf("host has %d subdomain labels ('%s')", depth, u.Parts.Subdomain),
	}
}
