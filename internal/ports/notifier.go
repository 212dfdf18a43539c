package ports

import "github.com/phishinv/phish-investigator/internal/domain"

// AlertNotifier defines the one-way alert hand-off to the external fragment
// renderer
//
// Notify must return promptly and never surface delivery failures to the
// caller: the hand-off is fire-and-forget, and losing it degrades
// presentation only, never the record of score.
type AlertNotifier interface {
	Notify(alert domain.Alert)
}
