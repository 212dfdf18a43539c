package ledger

import (
	"context"
	"sync"

	"github.com/phishinv/phish-investigator/internal/domain"
)

// MemoryLedger keeps investigations in process memory, newest first
//
// The slice is shared mutable state across concurrent request handlers, so
// every access goes through the mutex. Records live for the process
// lifetime; there is no expiry and no persistence across restarts.
type MemoryLedger struct {
	mu      sync.Mutex
	records []domain.Investigation
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		records: make([]domain.Investigation, 0),
	}
}

// Insert places a copy of the record at the head of the ledger
func (l *MemoryLedger) Insert(_ context.Context, inv *domain.Investigation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append([]domain.Investigation{*inv}, l.records...)
	return nil
}

// Recent returns a snapshot of up to limit records, newest first
func (l *MemoryLedger) Recent(_ context.Context, limit int) ([]domain.Investigation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.records) {
		limit = len(l.records)
	}

	out := make([]domain.Investigation, limit)
	copy(out, l.records[:limit])
	return out, nil
}

// Len reports the number of recorded investigations
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
