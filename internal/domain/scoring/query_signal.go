package scoring

import (
	"fmt"
	"strings"

	"github.com/phishinv/phish-investigator/internal/domain"
)

const (
	queryWeight        = 5
	maxQuerySeparators = 3
)

// QuerySignal flags URLs with unusually complex query strings
type QuerySignal struct{}

// NewQuerySignal creates a new query-complexity signal
func NewQuerySignal() *QuerySignal {
	return &QuerySignal{}
}

// Name returns the signal name
func (s *QuerySignal) Name() string {
	return "Query Complexity"
}

// Evaluate flags URLs whose combined '?' and '&' count exceeds the limit
func (s *QuerySignal) Evaluate(u URL) *domain.SignalHit {
	separators := strings.Count(u.Raw, "?") + strings.Count(u.Raw, "&")
	if separators <= maxQuerySeparators {
		return nil
	}

	return &domain.SignalHit{
		Signal:   "QUERY_COMPLEXITY",
		Points:   queryWeight,
		Evidence: fmt.Sprintf("URL has %d query separators (limit %d)", separators, maxQuerySeparators),
	}
}
