package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// AwardScan pays the configured scan reward. The idempotency key is derived
// from the scan event id, so a retried upload never pays twice.
func (e *Engine) AwardScan(ctx context.Context, userID, scanEventID, foodName string) (*ApplyResult, error) {
	description := "Scan reward"
	if foodName != "" {
		description = fmt.Sprintf("Scanned %s", foodName)
	}

	return e.Apply(ctx, ApplyRequest{
		AccountID:      userID,
		Amount:         e.cfg.ScanReward,
		Kind:           models.ScanReward,
		Description:    description,
		IdempotencyKey: fmt.Sprintf("scan:%s", scanEventID),
	})
}

// AwardDailyBonus pays the daily login bonus at most once per UTC day.
func (e *Engine) AwardDailyBonus(ctx context.Context, userID string, day time.Time) (*ApplyResult, error) {
	return e.Apply(ctx, ApplyRequest{
		AccountID:      userID,
		Amount:         e.cfg.DailyBonus,
		Kind:           models.DailyBonus,
		Description:    "Daily login bonus",
		IdempotencyKey: fmt.Sprintf("daily:%s:%s", userID, day.UTC().Format("2006-01-02")),
	})
}

// ReferralBonusResult is the outcome of a successful referral redemption.
type ReferralBonusResult struct {
	ReferralID    string
	CorrelationID string
	Amount        int64
}

// AwardReferralBonus redeems a registered referral: both bonus legs are paid
// under one correlation id, then the referral moves to redeemed. The status
// flips last, so a crash mid-way leaves the referral registered and the
// operation safely retryable — on retry, legs already paid surface as
// duplicate idempotency keys and are skipped rather than paid again.
func (e *Engine) AwardReferralBonus(ctx context.Context, referralID, newUserID string) (*ReferralBonusResult, error) {
	referral, err := e.store.GetReferral(ctx, referralID)
	if err != nil {
		return nil, err
	}
	if referral.Status == models.ReferralRedeemed {
		return nil, fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralAlreadyRedeemed)
	}
	if referral.Status != models.ReferralRegistered {
		// Not yet redeemable: the invited phone has not registered.
		return nil, fmt.Errorf("referral %s not registered: %w", referralID, storage.ErrReferralNotFound)
	}
	if referral.ReferredUserID != "" && referral.ReferredUserID != newUserID {
		return nil, fmt.Errorf("referral %s belongs to another user: %w", referralID, storage.ErrReferralNotFound)
	}

	correlationID := uuid.New().String()
	idempotencyKey := fmt.Sprintf("referral:%s:redeem", referralID)

	legs := []ApplyRequest{
		{
			AccountID:      referral.ReferrerID,
			Amount:         e.cfg.ReferralBonus,
			Kind:           models.ReferralBonus,
			Description:    "Referral bonus",
			IdempotencyKey: idempotencyKey,
			CorrelationID:  correlationID,
		},
		{
			AccountID:      newUserID,
			Amount:         e.cfg.ReferralBonus,
			Kind:           models.ReferralBonus,
			Description:    "Welcome bonus for joining via referral",
			IdempotencyKey: idempotencyKey,
			CorrelationID:  correlationID,
		},
	}

	for _, leg := range legs {
		if _, err := e.Apply(ctx, leg); err != nil {
			if errors.Is(err, storage.ErrDuplicateIdempotencyKey) {
				// Already paid by an earlier, partially completed redemption.
				continue
			}
			return nil, err
		}
	}

	if err := e.store.RedeemReferral(ctx, referral.ID); err != nil {
		return nil, err
	}

	return &ReferralBonusResult{
		ReferralID:    referral.ID,
		CorrelationID: correlationID,
		Amount:        e.cfg.ReferralBonus,
	}, nil
}

// AdjustResult is the outcome of a manual adjustment.
type AdjustResult struct {
	PreviousBalance int64
	NewBalance      int64
	Applied         int64
	Transaction     *models.Transaction
}

// AdminAdjust applies a signed manual correction. A subtraction larger than
// the current balance clamps to "set balance to zero" instead of failing, so
// the clamp is recomputed from a fresh read on every version-race retry. An
// audit record is emitted best-effort after the balance change commits.
func (e *Engine) AdminAdjust(ctx context.Context, userID string, amount int64, reason, adminID string) (*AdjustResult, error) {
	if amount == 0 {
		return nil, fmt.Errorf("adjustment amount must be non-zero: %w", ErrInvalidAmount)
	}

	var result *AdjustResult
	for attempt := 1; ; attempt++ {
		account, err := e.store.GetAccount(ctx, userID)
		if err != nil {
			return nil, err
		}

		delta := amount
		if delta < 0 && account.Balance+delta < 0 {
			delta = -account.Balance
		}

		if delta == 0 {
			// Subtracting from an empty balance: nothing to record in the ledger.
			result = &AdjustResult{PreviousBalance: account.Balance, NewBalance: account.Balance}
			break
		}

		entry := &models.Transaction{
			ID:          uuid.New().String(),
			AccountID:   account.ID,
			Amount:      delta,
			Kind:        models.AdminAdjustment,
			Description: fmt.Sprintf("Manual adjustment by admin %s: %s", adminID, reason),
			CreatedAt:   time.Now().UTC(),
		}

		err = e.store.ApplyEntry(ctx, account, account.Balance+delta, entry)
		if err == nil {
			result = &AdjustResult{
				PreviousBalance: account.Balance,
				NewBalance:      account.Balance + delta,
				Applied:         delta,
				Transaction:     entry,
			}
			break
		}
		if !errors.Is(err, storage.ErrConcurrentModification) {
			return nil, err
		}
		if attempt >= e.cfg.ApplyMaxAttempts {
			return nil, fmt.Errorf("adjustment on account %s gave up after %d attempts: %w",
				userID, attempt, storage.ErrConcurrentModification)
		}
	}

	e.publishAudit(ctx, &models.AuditRecord{
		ID:              uuid.New().String(),
		AdminID:         adminID,
		UserID:          userID,
		Amount:          amount,
		Reason:          reason,
		PreviousBalance: result.PreviousBalance,
		NewBalance:      result.NewBalance,
		Timestamp:       time.Now().UTC(),
	})

	return result, nil
}
