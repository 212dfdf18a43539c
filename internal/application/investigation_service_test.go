package application

import (
	"context"
	"errors"
	"testing"

	"github.com/phishinv/phish-investigator/internal/domain"
	"github.com/phishinv/phish-investigator/internal/domain/scoring"
	"github.com/phishinv/phish-investigator/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger records inserts in order, newest first
type fakeLedger struct {
	records []domain.Investigation
}

func (f *fakeLedger) Insert(_ context.Context, inv *domain.Investigation) error {
	f.records = append([]domain.Investigation{*inv}, f.records...)
	return nil
}

func (f *fakeLedger) Recent(_ context.Context, limit int) ([]domain.Investigation, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

func (f *fakeLedger) Len() int { return len(f.records) }

// fakeNotifier records every hand-off
type fakeNotifier struct {
	alerts []domain.Alert
}

func (f *fakeNotifier) Notify(alert domain.Alert) {
	f.alerts = append(f.alerts, alert)
}

// fakeEnricher returns a fixed enrichment or a fixed error
type fakeEnricher struct {
	enrichment *ports.Enrichment
	err        error
}

func (f *fakeEnricher) Resolve(_ context.Context, _ string) (*ports.Enrichment, error) {
	return f.enrichment, f.err
}

func newService(ledger ports.Ledger, enricher ports.Enricher, notifier ports.AlertNotifier) *InvestigationService {
	return NewInvestigationService(ledger, scoring.NewScorer(), enricher, notifier)
}

func TestSubmit_BenignURL(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger, nil, nil)

	inv, hits, err := svc.Submit(context.Background(), "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", inv.URL)
	assert.Equal(t, "example.com", inv.Domain)
	assert.Equal(t, domain.StatusAnalyzed, inv.Status)
	assert.Equal(t, 0, inv.Score)
	assert.Equal(t, domain.DecisionMonitor, inv.Decision)
	assert.NotEqual(t, "", inv.ID.String())
	assert.False(t, inv.SubmittedAt.IsZero())
	assert.Empty(t, hits)
	assert.Equal(t, 1, ledger.Len())
}

func TestSubmit_MalformedURLRejected(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"Not a URL", "not a url"},
		{"Missing scheme", "example.com/login"},
		{"Unsupported scheme", "ftp://example.com/"},
		{"Scheme only", "https://"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{}
			notifier := &fakeNotifier{}
			svc := newService(ledger, nil, notifier)

			inv, _, err := svc.Submit(context.Background(), tt.url)
			require.Error(t, err)

			var verr *domain.ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %T", err)
			assert.Nil(t, inv)
			assert.Equal(t, 0, ledger.Len(), "rejection must not touch the ledger")
			assert.Empty(t, notifier.alerts, "rejection must not emit a hand-off")
		})
	}
}

func TestSubmit_HighScoreEmitsAlert(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	svc := newService(ledger, nil, notifier)

	// 8 keywords + brand token + risky TLD = 84, report tier
	highRisk := "https://microsoft-login-verify-secure-wallet-invoice.bank.top/account?password=1"
	inv, _, err := svc.Submit(context.Background(), highRisk)
	require.NoError(t, err)

	assert.Equal(t, 84, inv.Score)
	assert.Equal(t, domain.DecisionReport, inv.Decision)

	require.Len(t, notifier.alerts, 1, "exactly one hand-off per qualifying submission")
	assert.Equal(t, highRisk, notifier.alerts[0].URL)
	assert.Equal(t, 84, notifier.alerts[0].Score)
	assert.Equal(t, domain.DecisionReport, notifier.alerts[0].Decision)
}

func TestSubmit_AlertThresholdBoundary(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	svc := newService(ledger, nil, notifier)

	// 5 keywords + risky TLD = exactly 50
	boundary := "https://login-verify-secure-wallet-invoice.example.top/"
	inv, _, err := svc.Submit(context.Background(), boundary)
	require.NoError(t, err)

	assert.Equal(t, 50, inv.Score)
	assert.Equal(t, domain.DecisionInternalBlock, inv.Decision)
	assert.Len(t, notifier.alerts, 1, "a score meeting the threshold must emit a hand-off")
}

func TestSubmit_LowScoreEmitsNoAlert(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	svc := newService(ledger, nil, notifier)

	inv, _, err := svc.Submit(context.Background(), "https://example.com/login")
	require.NoError(t, err)

	assert.Equal(t, 8, inv.Score)
	assert.Empty(t, notifier.alerts)
}

func TestSubmit_EnrichmentAnnotatesRecord(t *testing.T) {
	svc := newService(&fakeLedger{}, &fakeEnricher{
		enrichment: &ports.Enrichment{IP: "93.184.216.34", Nameservers: []string{"a.iana-servers.net."}},
	}, nil)

	inv, _, err := svc.Submit(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Contains(t, inv.Notes, "93.184.216.34")
	assert.Contains(t, inv.Notes, "a.iana-servers.net.")
}

func TestSubmit_EnrichmentFailureNeverAborts(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger, &fakeEnricher{err: errors.New("lookup timed out")}, nil)

	inv, _, err := svc.Submit(context.Background(), "https://example.com/")
	require.NoError(t, err, "enrichment failure must not fail the submission")
	assert.Contains(t, inv.Notes, "lookup timed out")
	assert.Equal(t, 1, ledger.Len())
}

func TestSubmit_UnknownDomainFallback(t *testing.T) {
	enricher := &fakeEnricher{err: errors.New("should not be called")}
	svc := newService(&fakeLedger{}, enricher, nil)

	inv, _, err := svc.Submit(context.Background(), "https://10.0.0.1/login")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownDomain, inv.Domain)
	assert.Empty(t, inv.Notes, "no enrichment attempt for an unknown domain")
}

func TestRecent_OrderingAndDefaultLimit(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger, nil, nil)
	ctx := context.Background()

	_, _, err := svc.Submit(ctx, "https://a.example.com/")
	require.NoError(t, err)
	_, _, err = svc.Submit(ctx, "https://b.example.com/")
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://b.example.com/", recent[0].URL)
	assert.Equal(t, "https://a.example.com/", recent[1].URL)
}
