package ledger

import (
	"context"
	"time"
)

// Service defines the public operations of the ledger engine. Handlers depend
// on this interface so tests can substitute a mock.
type Service interface {
	// Apply performs one balance mutation and appends its ledger entry.
	Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error)

	// Transfer moves coins from sender to the account owning receiverPhone.
	Transfer(ctx context.Context, senderID, receiverPhone string, amount int64) (*TransferResult, error)

	// AwardScan pays the configured scan reward, keyed by the scan event id.
	AwardScan(ctx context.Context, userID, scanEventID, foodName string) (*ApplyResult, error)

	// AwardDailyBonus pays the configured daily login bonus, at most once per UTC day.
	AwardDailyBonus(ctx context.Context, userID string, day time.Time) (*ApplyResult, error)

	// AwardReferralBonus redeems a registered referral, paying referrer and
	// referred user exactly once.
	AwardReferralBonus(ctx context.Context, referralID, newUserID string) (*ReferralBonusResult, error)

	// AdminAdjust applies a manual signed correction, clamping subtraction at zero.
	AdminAdjust(ctx context.Context, userID string, amount int64, reason, adminID string) (*AdjustResult, error)
}
