package scoring

import (
	"regexp"

	"github.com/phishinv/phish-investigator/internal/domain"
)

const lookalikeWeight = 12

// lookalikePattern covers at-sign and percent-encoding tricks plus known
// homoglyph and leet substitutions for trusted brand names. Hand-authored
// and brittle by construction; replace this signal with a stronger detector
// rather than extending the expression indefinitely.
var lookalikePattern = regexp.MustCompile(`[@%]|0auth|paypa1|mícrosoft|faceb00k|g00gle`)

// LookalikeSignal flags obfuscation and homoglyph lookalike patterns
type LookalikeSignal struct{}

// NewLookalikeSignal creates a new lookalike-pattern signal
func NewLookalikeSignal() *LookalikeSignal {
	return &LookalikeSignal{}
}

// Name returns the signal name
func (s *LookalikeSignal) Name() string {
	return "Lookalike Pattern"
}

// Evaluate flags the URL at most once regardless of how many patterns match
func (s *LookalikeSignal) Evaluate(u URL) *domain.SignalHit {
	match := lookalikePattern.FindString(u.Lowered)
	if match == "" {
		return nil
	}

	return &domain.SignalHit{
		Signal:   "LOOKALIKE_PATTERN",
		Points:   lookalikeWeight,
		Evidence: "URL matches obfuscation/lookalike pattern: " + match,
	}
}
