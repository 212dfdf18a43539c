package application

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phishinv/phish-investigator/internal/domain"
	"github.com/phishinv/phish-investigator/internal/domain/scoring"
	"github.com/phishinv/phish-investigator/internal/domain/urlparts"
	"github.com/phishinv/phish-investigator/internal/ports"
)

// DefaultRecentLimit is the canonical size of the recent-investigations view
const DefaultRecentLimit = 20

// InvestigationService orchestrates URL submissions end to end:
// validate, extract, score, decide, enrich, record, alert.
type InvestigationService struct {
	ledger   ports.Ledger
	scorer   *scoring.Scorer
	enricher ports.Enricher      // optional, best-effort annotation only
	notifier ports.AlertNotifier // optional, fire-and-forget hand-off
}

// NewInvestigationService creates the service with dependency injection.
// enricher and notifier may be nil; the corresponding steps are skipped.
func NewInvestigationService(
	ledger ports.Ledger,
	scorer *scoring.Scorer,
	enricher ports.Enricher,
	notifier ports.AlertNotifier,
) *InvestigationService {
	return &InvestigationService{
		ledger:   ledger,
		scorer:   scorer,
		enricher: enricher,
		notifier: notifier,
	}
}

// Submit investigates one suspected URL
//
// Side effects per successful call: exactly one ledger insertion, and at
// most one alert hand-off when the score meets the alert threshold. A
// validation failure creates no record and mutates nothing. Enrichment
// failures are downgraded to a note on the record.
func (s *InvestigationService) Submit(ctx context.Context, rawURL string) (*domain.Investigation, []domain.SignalHit, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, nil, err
	}

	parts := urlparts.Extract(rawURL)
	registrable := parts.RegistrableDomain
	if registrable == "" {
		registrable = domain.UnknownDomain
	}

	result := s.scorer.Score(rawURL)
	decision := domain.DecisionForScore(result.Score)

	// Enrichment runs before the ledger insert and never holds its lock;
	// the adapter bounds its own network I/O
	notes := s.enrich(ctx, registrable)

	inv := &domain.Investigation{
		ID:          uuid.New(),
		URL:         rawURL,
		Domain:      registrable,
		SubmittedAt: time.Now(),
		Status:      domain.StatusAnalyzed,
		Score:       result.Score,
		Decision:    decision,
		Notes:       notes,
	}

	if err := s.ledger.Insert(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("ledger insert: %w", err)
	}

	if result.Score >= domain.AlertThreshold && s.notifier != nil {
		s.notifier.Notify(domain.Alert{URL: inv.URL, Score: inv.Score, Decision: inv.Decision})
	}

	if result.Score >= domain.ReportThreshold {
		log.Printf("🚨 HIGH RISK URL DETECTED:")
		log.Printf("  URL: %s", inv.URL)
		log.Printf("  Domain: %s", inv.Domain)
		log.Printf("  Risk Score: %d (%s)", inv.Score, inv.Decision)
		for _, hit := range result.Hits {
			log.Printf("    - %s (+%d): %s", hit.Signal, hit.Points, hit.Evidence)
		}
	}

	return inv, result.Hits, nil
}

// Recent returns the most recent investigations, newest first
func (s *InvestigationService) Recent(ctx context.Context, limit int) ([]domain.Investigation, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.ledger.Recent(ctx, limit)
}

func (s *InvestigationService) enrich(ctx context.Context, registrable string) string {
	if s.enricher == nil || registrable == domain.UnknownDomain {
		return ""
	}

	enr, err := s.enricher.Resolve(ctx, registrable)
	if err != nil {
		// Best-effort only: the failure becomes an annotation, never an abort
		return fmt.Sprintf("enrichment failed: %v", err)
	}

	note := "resolved to " + enr.IP
	if len(enr.Nameservers) > 0 {
		note += "; ns: " + strings.Join(enr.Nameservers, ", ")
	}
	return note
}

// validateURL accepts only syntactically well-formed absolute http(s) URLs
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &domain.ValidationError{Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &domain.ValidationError{Reason: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &domain.ValidationError{Reason: "missing host"}
	}
	return nil
}
