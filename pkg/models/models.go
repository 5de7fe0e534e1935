package models

import (
	"time"
)

// TransactionKind classifies a ledger entry by the event that produced it.
type TransactionKind string

const (
	ScanReward       TransactionKind = "scan_reward"
	ReferralBonus    TransactionKind = "referral_bonus"
	DailyBonus       TransactionKind = "daily_bonus"
	AdminAdjustment  TransactionKind = "admin_adjustment"
	TransferOut      TransactionKind = "transfer_out"
	TransferIn       TransactionKind = "transfer_in"
	TransferReversal TransactionKind = "transfer_reversal"
)

// Valid reports whether k is one of the defined transaction kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case ScanReward, ReferralBonus, DailyBonus, AdminAdjustment,
		TransferOut, TransferIn, TransferReversal:
		return true
	}
	return false
}

// ReferralStatus defines the possible states of a referral.
type ReferralStatus string

const (
	ReferralPending    ReferralStatus = "pending"
	ReferralAccepted   ReferralStatus = "accepted"
	ReferralRegistered ReferralStatus = "registered"
	ReferralRedeemed   ReferralStatus = "redeemed"
)

// Account holds a user's current coin balance.
// Version is a monotonic counter incremented on every balance mutation and
// is the serialization point for optimistic concurrency.
type Account struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	Name      string    `json:"name" dynamodbav:"name"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Transaction is a single immutable ledger entry. The balance of an account
// always equals the sum of Amount over its entries.
type Transaction struct {
	ID             string          `dynamodbav:"entry_id"`
	AccountID      string          `dynamodbav:"account_id"`
	Amount         int64           `dynamodbav:"amount"`
	Kind           TransactionKind `dynamodbav:"kind"`
	CorrelationID  string          `dynamodbav:"correlation_id,omitempty"`
	IdempotencyKey string          `dynamodbav:"idempotency_key,omitempty"`
	Description    string          `dynamodbav:"description"`
	CreatedAt      time.Time       `dynamodbav:"created_at"`
}

// Referral tracks an invitation from an existing user to a phone number.
// ReferredUserID stays empty until the invited phone registers.
type Referral struct {
	ID             string         `dynamodbav:"id"`
	ReferrerID     string         `dynamodbav:"referrer_id"`
	ReferredPhone  string         `dynamodbav:"referred_phone"`
	ReferredUserID string         `dynamodbav:"referred_user_id,omitempty"`
	Status         ReferralStatus `dynamodbav:"status"`
	CreatedAt      time.Time      `dynamodbav:"created_at"`
}

// ReferralStats aggregates a referrer's referrals by status.
type ReferralStats struct {
	Total      int `json:"total_referrals"`
	Pending    int `json:"pending"`
	Accepted   int `json:"accepted"`
	Registered int `json:"registered"`
	Redeemed   int `json:"redeemed"`
}

// AuditRecord captures a manual coin adjustment for external review.
// Delivery is best-effort and never gates the underlying balance change.
type AuditRecord struct {
	ID              string    `json:"id" dynamodbav:"id"`
	AdminID         string    `json:"admin_id" dynamodbav:"admin_id"`
	UserID          string    `json:"user_id" dynamodbav:"user_id"`
	Amount          int64     `json:"amount" dynamodbav:"amount"`
	Reason          string    `json:"reason" dynamodbav:"reason"`
	PreviousBalance int64     `json:"previous_balance" dynamodbav:"previous_balance"`
	NewBalance      int64     `json:"new_balance" dynamodbav:"new_balance"`
	Timestamp       time.Time `json:"timestamp" dynamodbav:"timestamp"`
}
