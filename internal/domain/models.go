package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status tags the lifecycle stage of an investigation
type Status string

const (
	StatusQueued   Status = "queued"
	StatusAnalyzed Status = "analyzed"
	StatusBlocked  Status = "blocked"
	StatusReported Status = "reported"
)

// Policy decision tiers, derived solely from the risk score
const (
	DecisionMonitor       = "monitor"
	DecisionInternalBlock = "internal block"
	DecisionReport        = "auto-report + emergency block"
)

// Score boundaries for policy decisions and alerting.
// A score meeting AlertThreshold triggers the cross-service alert hand-off.
const (
	MaxScore        = 100
	ReportThreshold = 80
	BlockThreshold  = 50
	AlertThreshold  = BlockThreshold
)

// UnknownDomain is recorded when a registrable domain cannot be derived
const UnknownDomain = "(unknown)"

// Investigation represents one scored, decided, recorded URL submission
//
// A record is created exactly once per accepted submission and is never
// mutated or deleted after insertion into the ledger. Status is produced at
// creation and not currently transitioned afterwards; the remaining statuses
// exist as an extension point for a review workflow.
type Investigation struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      Status    `json:"status"`
	Score       int       `json:"score"`
	Decision    string    `json:"decision"`
	Notes       string    `json:"notes,omitempty"`
}

// SignalHit represents a single triggered risk signal
type SignalHit struct {
	Signal   string `json:"signal"`             // e.g., "SUSPICIOUS_KEYWORDS"
	Points   int    `json:"points"`             // Contribution to the total score
	Evidence string `json:"evidence,omitempty"` // Human-readable explanation
}

// Alert is the payload of the one-way hand-off to the fragment renderer
type Alert struct {
	URL      string
	Score    int
	Decision string
}

// DecisionForScore maps a risk score to its policy decision tier
//
// Total and pure: two records with the same score always carry the same
// decision. Boundaries are inclusive at the lower bound of each tier.
func DecisionForScore(score int) string {
	switch {
	case score >= ReportThreshold:
		return DecisionReport
	case score >= BlockThreshold:
		return DecisionInternalBlock
	default:
		return DecisionMonitor
	}
}

// RiskLabel converts a risk score to the display-only severity label used by
// presentation badges. The caution boundary deliberately coincides with the
// alert threshold.
func RiskLabel(score int) string {
	switch {
	case score >= ReportThreshold:
		return "danger"
	case score >= BlockThreshold:
		return "caution"
	default:
		return "safe"
	}
}

// ValidationError rejects a malformed or non-absolute submitted URL.
// It is the only user-facing, recoverable error in the submission path:
// no record is created and the ledger is untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid url: %s", e.Reason)
}
