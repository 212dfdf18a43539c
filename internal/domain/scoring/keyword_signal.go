package scoring

import (
	"fmt"
	"strings"

	"github.com/phishinv/phish-investigator/internal/domain"
)

// keywordWeight is added once per matching keyword, not capped per-category
const keywordWeight = 8

// suspiciousKeywords are credential-harvesting and payment-lure tokens
// commonly planted in phishing paths and hostnames
var suspiciousKeywords = []string{
	"login", "verify", "secure", "wallet", "invoice", "billing",
	"account", "bank", "update", "password", "signin", "onedrive",
}

// KeywordSignal flags URLs containing suspicious keywords
type KeywordSignal struct{}

// NewKeywordSignal creates a new suspicious-keyword signal
func NewKeywordSignal() *KeywordSignal {
	return &KeywordSignal{}
}

// Name returns the signal name
func (s *KeywordSignal) Name() string {
	return "Suspicious Keywords"
}

// Evaluate adds keywordWeight for every keyword found anywhere in the URL
func (s *KeywordSignal) Evaluate(u URL) *domain.SignalHit {
	var matched []string
	for _, keyword := range suspiciousKeywords {
		if strings.Contains(u.Lowered, keyword) {
			matched = append(matched, keyword)
		}
	}

	if len(matched) == 0 {
		return nil
	}

	return &domain.SignalHit{
		Signal: "SUSPICIOUS_KEYWORDS",
		Points: keywordWeight * len(matched),
		Evidence: fmt.Sprintf("URL contains %d suspicious keyword(s): %s",
			len(matched), strings.Join(matched, ", ")),
	}
}
