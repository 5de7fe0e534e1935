package storage

import (
	"context"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// AccountReader defines the interface for reading account data.
type AccountReader interface {
	// GetAccount retrieves an account by its id.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// GetAccountByPhone resolves a phone number to its account.
	GetAccountByPhone(ctx context.Context, phone string) (*models.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// AccountWriter defines the interface for mutating account state.
// ApplyEntry is the only way a balance changes.
type AccountWriter interface {
	// CreateAccount creates a new account with a zero balance and claims its
	// phone number. Returns ErrAccountExists if either is already taken.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// ApplyEntry writes newBalance conditioned on the account's version being
	// unchanged since it was read, and appends the ledger entry in the same
	// atomic unit. When the entry carries an idempotency key, the write also
	// fails with ErrDuplicateIdempotencyKey if that key was already used for
	// this account. A lost version race yields ErrConcurrentModification.
	ApplyEntry(ctx context.Context, account *models.Account, newBalance int64, entry *models.Transaction) error
}

// AccountStore combines the reader and writer interfaces.
type AccountStore interface {
	AccountReader
	AccountWriter
}
