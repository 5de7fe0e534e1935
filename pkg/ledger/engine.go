// Package ledger implements the coin ledger engine: the only component that
// changes an account balance. Every mutation is a conditional write on the
// account's version plus an append to the transaction log, executed as one
// atomic unit by the storage layer.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/snapbite/coin-ledger/pkg/audit"
	"github.com/snapbite/coin-ledger/pkg/config"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// ErrInvalidAmount is returned for a zero apply amount or a non-positive transfer amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidKind is returned for a transaction kind outside the defined enum.
var ErrInvalidKind = errors.New("invalid transaction kind")

// ErrTransferToSelf is returned when sender and receiver resolve to the same account.
var ErrTransferToSelf = errors.New("cannot transfer to self")

// ApplyRequest describes one balance mutation.
type ApplyRequest struct {
	AccountID      string
	Amount         int64
	Kind           models.TransactionKind
	Description    string
	IdempotencyKey string
	CorrelationID  string
}

// ApplyResult is the outcome of a successful apply.
type ApplyResult struct {
	Transaction *models.Transaction
	NewBalance  int64
}

// Engine applies balance mutations against the account store and ledger log.
type Engine struct {
	store  storage.Storage
	audit  audit.Publisher
	cfg    config.Rewards
	logger *slog.Logger
}

// New creates a new Engine. The audit publisher may be nil when no sink is configured.
func New(store storage.Storage, auditPub audit.Publisher, cfg config.Rewards, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ApplyMaxAttempts <= 0 {
		cfg.ApplyMaxAttempts = 3
	}
	return &Engine{store: store, audit: auditPub, cfg: cfg, logger: logger}
}

// Make sure we conform to the interface
var _ Service = (*Engine)(nil)

// Apply performs one balance mutation, retrying the whole read-check-write
// cycle a bounded number of times when it loses a version race. Callers
// retrying a failed logical operation must reuse the same idempotency key.
func (e *Engine) Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error) {
	if req.Amount == 0 {
		return nil, fmt.Errorf("apply amount must be non-zero: %w", ErrInvalidAmount)
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("kind %q: %w", req.Kind, ErrInvalidKind)
	}

	for attempt := 1; ; attempt++ {
		result, err := e.applyOnce(ctx, req)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, storage.ErrConcurrentModification) {
			return nil, err
		}
		if attempt >= e.cfg.ApplyMaxAttempts {
			return nil, fmt.Errorf("apply on account %s gave up after %d attempts: %w",
				req.AccountID, attempt, storage.ErrConcurrentModification)
		}
		e.logger.Debug("apply lost version race, retrying",
			slog.String("account_id", req.AccountID),
			slog.Int("attempt", attempt),
		)
	}
}

// applyOnce runs a single read-check-write cycle.
func (e *Engine) applyOnce(ctx context.Context, req ApplyRequest) (*ApplyResult, error) {
	account, err := e.store.GetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	newBalance := account.Balance + req.Amount
	if newBalance < 0 {
		return nil, fmt.Errorf("account %s balance %d, debit %d: %w",
			account.ID, account.Balance, -req.Amount, storage.ErrInsufficientBalance)
	}

	entry := &models.Transaction{
		ID:             uuid.New().String(),
		AccountID:      account.ID,
		Amount:         req.Amount,
		Kind:           req.Kind,
		CorrelationID:  req.CorrelationID,
		IdempotencyKey: req.IdempotencyKey,
		Description:    req.Description,
		CreatedAt:      time.Now().UTC(),
	}

	if err := e.store.ApplyEntry(ctx, account, newBalance, entry); err != nil {
		return nil, err
	}

	return &ApplyResult{Transaction: entry, NewBalance: newBalance}, nil
}

// publishAudit emits an audit record without letting delivery failure affect
// the already-committed balance change.
func (e *Engine) publishAudit(ctx context.Context, record *models.AuditRecord) {
	if e.audit == nil {
		return
	}
	if err := e.audit.Publish(ctx, record); err != nil {
		e.logger.Error("failed to publish audit record",
			slog.String("user_id", record.UserID),
			slog.String("admin_id", record.AdminID),
			slog.String("error", err.Error()),
		)
	}
}
