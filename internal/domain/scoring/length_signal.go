package scoring

import (
	"fmt"

	"github.com/phishinv/phish-investigator/internal/domain"
)

const (
	lengthWeight    = 5
	maxBenignLength = 120
)

// LengthSignal flags excessively long URLs, a common obfuscation tactic
type LengthSignal struct{}

// NewLengthSignal creates a new excessive-length signal
func NewLengthSignal() *LengthSignal {
	return &LengthSignal{}
}

// Name returns the signal name
func (s *LengthSignal) Name() string {
	return "Excessive Length"
}

// Evaluate flags URLs longer than maxBenignLength characters
func (s *LengthSignal) Evaluate(u URL) *domain.SignalHit {
	if len(u.Raw) <= maxBenignLength {
		return nil
	}

	return &domain.SignalHit{
		Signal:   "EXCESSIVE_LENGTH",
		Points:   lengthWeight,
		Evidence: fmt.Sprintf("URL is %d characters long (limit %d)", len(u.Raw), maxBenignLength),
	}
}
