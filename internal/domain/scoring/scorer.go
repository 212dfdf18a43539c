package scoring

import (
	"github.com/phishinv/phish-investigator/internal/domain"
)

// Scorer computes a lexical risk score for a URL using pluggable signals
//
// The Scorer runs an ordered list of Signal implementations and sums their
// contributions, clamped to [0, MaxScore]. Signals are additive and
// independent: multiple keyword or brand matches compound, and a short URL
// dense with suspicious tokens can saturate the score on its own. That is
// intended behavior, not a defect.
type Scorer struct {
	signals []Signal
}

// Result carries the aggregate score together with the per-signal breakdown
type Result struct {
	Score int                `json:"score"`
	Hits  []domain.SignalHit `json:"hits"`
}

// NewScorer creates a scorer with the standard signal set
func NewScorer() *Scorer {
	return &Scorer{
		signals: []Signal{
			NewKeywordSignal(),
			NewBrandSignal(),
			NewLengthSignal(),
			NewQuerySignal(),
			NewLookalikeSignal(),
			NewTLDSignal(),
			NewSubdomainSignal(),
		},
	}
}

// Score evaluates all signals against the URL and returns the clamped sum
func (s *Scorer) Score(rawURL string) Result {
	u := newURL(rawURL)

	total := 0
	hits := make([]domain.SignalHit, 0)
	for _, signal := range s.signals {
		if hit := signal.Evaluate(u); hit != nil {
			hits = append(hits, *hit)
			total += hit.Points
		}
	}

	if total > domain.MaxScore {
		total = domain.MaxScore
	}

	return Result{Score: total, Hits: hits}
}
