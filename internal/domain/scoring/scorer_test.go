package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saturatingURL packs all twelve keywords plus a brand token into a single
// short host: 12*8 + 10 = 106, which must clamp to 100.
const saturatingURL = "https://microsoft-login-verify-secure-wallet-invoice-billing-account-bank-update-password-signin-onedrive.example.com/"

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name     string
		url      string
		expected int
	}{
		{
			name:     "Benign short URL",
			url:      "https://example.com/",
			expected: 0,
		},
		{
			// 6 keywords (login, verify, secure, account, bank, update) = 48
			// + risky TLD top = 10; one '?' and one '&' stay under the
			// query-complexity limit
			name:     "Keyword-dense URL on risky TLD",
			url:      "https://login-secure.bank-example.top/account?verify=1&update=2",
			expected: 58,
		},
		{
			name:     "Keyword and brand compounding saturates",
			url:      saturatingURL,
			expected: 100,
		},
		{
			name:     "Lookalike pattern alone",
			url:      "https://example.com/a@b",
			expected: 12,
		},
		{
			name:     "Risky TLD alone",
			url:      "https://example.zip/",
			expected: 10,
		},
		{
			name:     "Deep subdomain nesting alone",
			url:      "https://a.b.example.com/",
			expected: 6,
		},
		{
			name:     "Excessive length alone",
			url:      "https://example.org/" + strings.Repeat("x", 110),
			expected: 5,
		},
		{
			name:     "Query complexity alone",
			url:      "https://example.org/?a=1&b=2&c=3&d=4",
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.url)
			assert.Equal(t, tt.expected, result.Score)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		})
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()
	url := "https://login-secure.bank-example.top/account?verify=1&update=2"

	first := scorer.Score(url)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Score, scorer.Score(url).Score)
	}
}

func TestScorer_CaseInsensitive(t *testing.T) {
	scorer := NewScorer()

	lower := "https://login.example.com/verify"
	upper := strings.ToUpper(lower)

	assert.Equal(t, scorer.Score(lower).Score, scorer.Score(upper).Score)
	assert.Equal(t, 16, scorer.Score(upper).Score)
}

func TestScorer_BreakdownSumsToScore(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score("https://login-secure.bank-example.top/account?verify=1&update=2")

	sum := 0
	for _, hit := range result.Hits {
		sum += hit.Points
	}
	assert.Equal(t, result.Score, sum, "below the cap the breakdown must sum to the score")
}

func TestScorer_BenignURLHasNoHits(t *testing.T) {
	result := NewScorer().Score("https://example.com/")
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Hits)
}
