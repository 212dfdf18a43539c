package scoring

import (
	"strings"

	"github.com/phishinv/phish-investigator/internal/domain"
	"github.com/phishinv/phish-investigator/internal/domain/urlparts"
)

// Signal defines the interface that all risk signals must implement
//
// This follows the Strategy pattern, allowing each signal to be:
//   - Independently developed and tested
//   - Easily added or removed from the scoring pipeline
//   - Replaced by a stronger detector without touching the aggregation logic
//
// Implementations must be deterministic: the same URL always produces the
// same contribution, with no time- or state-dependent behavior.
type Signal interface {
	// Evaluate inspects a URL and returns a SignalHit if the signal triggers,
	// nil otherwise
	Evaluate(u URL) *domain.SignalHit

	// Name returns the human-readable name of this signal
	Name() string
}

// URL provides the pre-computed views of a submitted URL shared by all signals
type URL struct {
	// Raw is the URL exactly as submitted
	Raw string

	// Lowered is the lower-cased URL, used for case-insensitive matching
	Lowered string

	// Parts is the public-suffix-aware host decomposition
	Parts urlparts.Parts
}

func newURL(rawURL string) URL {
	return URL{
		Raw:     rawURL,
		Lowered: strings.ToLower(rawURL),
		Parts:   urlparts.Extract(rawURL),
	}
}
