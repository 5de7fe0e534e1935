package storage

import (
	"context"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// LedgerReader defines the interface for reading the append-only transaction log.
// Entries are immutable; there is deliberately no writer interface beyond
// AccountWriter.ApplyEntry.
type LedgerReader interface {
	// GetTransaction retrieves a single ledger entry.
	GetTransaction(ctx context.Context, accountID, entryID string) (*models.Transaction, error)

	// ListTransactionsByAccount retrieves an account's ledger entries, newest
	// first. A limit of 0 means no limit.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int32) ([]models.Transaction, error)
}
