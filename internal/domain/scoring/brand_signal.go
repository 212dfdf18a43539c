package scoring

import (
	"fmt"
	"strings"

	"github.com/phishinv/phish-investigator/internal/domain"
)

// brandWeight is added once per matching brand token
const brandWeight = 10

// impersonatedBrands are brand tokens frequently abused in subdomains and
// paths to impersonate the legitimate service. Short tokens ("nh", "kb",
// "pay") match as substrings and may overlap longer ones ("kbstar"); the
// overlapping contributions compound, matching the additive model.
var impersonatedBrands = []string{
	"microsoft", "apple", "naver", "kakao", "nh", "kb", "woori",
	"kbstar", "line", "pay",
}

// BrandSignal flags URLs embedding impersonated brand names
type BrandSignal struct{}

// NewBrandSignal creates a new brand-impersonation signal
func NewBrandSignal() *BrandSignal {
	return &BrandSignal{}
}

// Name returns the signal name
func (s *BrandSignal) Name() string {
	return "Brand Impersonation"
}

// Evaluate adds brandWeight for every brand token found in the URL
func (s *BrandSignal) Evaluate(u URL) *domain.SignalHit {
	var matched []string
	for _, brand := range impersonatedBrands {
		if strings.Contains(u.Lowered, brand) {
			matched = append(matched, brand)
		}
	}

	if len(matched) == 0 {
		return nil
	}

	return &domain.SignalHit{
		Signal: "BRAND_IMPERSONATION",
		Points: brandWeight * len(matched),
		Evidence: fmt.Sprintf("URL contains %d brand token(s): %s",
			len(matched), strings.Join(matched, ", ")),
	}
}
