package scoring

import (
	"github.com/phishinv/phish-investigator/internal/domain"
)

const tldWeight = 10

// riskyTLDs are top-level domains with disproportionate phishing abuse.
// Compared against the last label of the public suffix, so "co.uk" is
// checked as "uk".
var riskyTLDs = map[string]bool{
	"zip": true,
	"mov": true,
	"top": true,
	"xyz": true,
	"gq":  true,
	"tk":  true,
	"cf":  true,
	"ml":  true,
	"ga":  true,
}

// TLDSignal flags URLs under high-abuse top-level domains
type TLDSignal struct{}

// NewTLDSignal creates a new risky-TLD signal
func NewTLDSignal() *TLDSignal {
	return &TLDSignal{}
}

// Name returns the signal name
func (s *TLDSignal) Name() string {
	return "Risky TLD"
}

// Evaluate flags the URL when its extracted TLD is on the risk list
func (s *TLDSignal) Evaluate(u URL) *domain.SignalHit {
	if !riskyTLDs[u.Parts.TLD] {
		return nil
	}

	return &domain.SignalHit{
		Signal:   "RISKY_TLD",
		Points:   tldWeight,
		Evidence: "top-level domain '" + u.Parts.TLD + "' is on the risk list",
	}
}
