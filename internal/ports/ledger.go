package ports

import (
	"context"

	"github.com/phishinv/phish-investigator/internal/domain"
)

// Ledger defines the contract for the ordered collection of investigations
//
// Implementations must keep reverse-chronological order (newest record at
// index 0), make Insert atomic with respect to concurrent inserts, and let
// Recent observe a consistent snapshot while writes are in flight.
type Ledger interface {
	// Insert places a record at the head of the ledger
	Insert(ctx context.Context, inv *domain.Investigation) error

	// Recent returns up to limit records, newest first
	Recent(ctx context.Context, limit int) ([]domain.Investigation, error)

	// Len reports the number of recorded investigations
	Len() int
}
