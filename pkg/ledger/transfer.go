package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/snapbite/coin-ledger/pkg/models"
)

// TransferResult is the outcome of a successful transfer.
type TransferResult struct {
	CorrelationID   string
	SenderBalance   int64
	ReceiverBalance int64
}

// Transfer debits the sender and credits the receiver as one logical
// operation. The storage layer offers no atomic write across two accounts, so
// the two legs are applied in a fixed order — debit first — and a failed
// credit is compensated by reversing the debit under the same correlation id.
func (e *Engine) Transfer(ctx context.Context, senderID, receiverPhone string, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive: %w", ErrInvalidAmount)
	}

	receiver, err := e.store.GetAccountByPhone(ctx, receiverPhone)
	if err != nil {
		return nil, err
	}
	if receiver.ID == senderID {
		return nil, fmt.Errorf("account %s: %w", senderID, ErrTransferToSelf)
	}

	correlationID := uuid.New().String()

	debit, err := e.Apply(ctx, ApplyRequest{
		AccountID:     senderID,
		Amount:        -amount,
		Kind:          models.TransferOut,
		Description:   fmt.Sprintf("Transfer to %s", receiverPhone),
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}

	credit, err := e.Apply(ctx, ApplyRequest{
		AccountID:     receiver.ID,
		Amount:        amount,
		Kind:          models.TransferIn,
		Description:   fmt.Sprintf("Transfer from account %s", senderID),
		CorrelationID: correlationID,
	})
	if err != nil {
		e.compensateDebit(ctx, senderID, amount, correlationID)
		return nil, fmt.Errorf("transfer %s credit leg failed: %w", correlationID, err)
	}

	return &TransferResult{
		CorrelationID:   correlationID,
		SenderBalance:   debit.NewBalance,
		ReceiverBalance: credit.NewBalance,
	}, nil
}

// compensateDebit reverses the sender's debit after a failed credit leg so
// no coins vanish from the ledger. If the reversal itself fails, the drift is
// logged loudly and left for the reconciliation sweep.
func (e *Engine) compensateDebit(ctx context.Context, senderID string, amount int64, correlationID string) {
	_, err := e.Apply(ctx, ApplyRequest{
		AccountID:     senderID,
		Amount:        amount,
		Kind:          models.TransferReversal,
		Description:   fmt.Sprintf("Reversal of transfer %s", correlationID),
		CorrelationID: correlationID,
	})
	if err != nil {
		e.logger.Error("CRITICAL: transfer debit could not be reversed",
			slog.String("sender_id", senderID),
			slog.String("correlation_id", correlationID),
			slog.Int64("amount", amount),
			slog.String("error", err.Error()),
		)
	}
}
