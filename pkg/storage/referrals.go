package storage

import (
	"context"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// ReferralStore defines the interface for the referral directory.
// Status only ever moves forward: pending -> registered -> redeemed.
type ReferralStore interface {
	// CreateReferral stores a new pending referral. Returns ErrReferralExists
	// if the referrer has already referred this phone number.
	CreateReferral(ctx context.Context, referral *models.Referral) (*models.Referral, error)

	// GetReferral retrieves a referral by its id.
	GetReferral(ctx context.Context, referralID string) (*models.Referral, error)

	// ListReferralsByReferrer retrieves all referrals sent by a user, newest first.
	ListReferralsByReferrer(ctx context.Context, referrerID string) ([]models.Referral, error)

	// RegisterReferral links a pending referral for the given phone number to
	// the newly registered user and moves it to the registered status.
	// Returns ErrReferralNotFound if no pending referral exists for the phone.
	RegisterReferral(ctx context.Context, phone, userID string) (*models.Referral, error)

	// RedeemReferral moves a referral from registered to redeemed. The update
	// is conditional on the current status; a referral that is no longer
	// registered yields ErrReferralAlreadyRedeemed.
	RedeemReferral(ctx context.Context, referralID string) error
}
