// Package api holds the wire types of the HTTP surface, kept separate from
// the domain models in pkg/models.
package api

import (
	"time"
)

// NewAccount is the request body for creating a coin account.
// Accounts are created once per user, at user-creation time.
type NewAccount struct {
	UserId string `json:"user_id" validate:"required"`
	Phone  string `json:"phone" validate:"required,e164"`
	Name   string `json:"name"`
}

// Account is the wire representation of a coin account.
type Account struct {
	Id        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name,omitempty"`
	Balance   int64     `json:"balance"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Balance is the response for the balance endpoint.
type Balance struct {
	UserId  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// Transaction is the wire representation of a ledger entry.
type Transaction struct {
	Id             string    `json:"id"`
	AccountId      string    `json:"account_id"`
	Amount         int64     `json:"amount"`
	Kind           string    `json:"kind"`
	CorrelationId  string    `json:"correlation_id,omitempty"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewTransfer is the request body for a coin transfer. The receiver is
// addressed by phone number, as in the mobile client.
type NewTransfer struct {
	SenderId      string `json:"sender_id" validate:"required"`
	ReceiverPhone string `json:"receiver_phone" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// TransferResult is the response for a completed transfer.
type TransferResult struct {
	CorrelationId   string `json:"correlation_id"`
	SenderBalance   int64  `json:"sender_balance"`
	ReceiverBalance int64  `json:"receiver_balance"`
}

// ScanReward is the request body for a scan reward.
type ScanReward struct {
	UserId      string `json:"user_id" validate:"required"`
	ScanEventId string `json:"scan_event_id" validate:"required"`
	FoodName    string `json:"food_name"`
}

// DailyBonus is the request body for the daily login bonus.
type DailyBonus struct {
	UserId string `json:"user_id" validate:"required"`
}

// Reward is the response for a paid reward.
type Reward struct {
	TransactionId string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	NewBalance    int64  `json:"new_balance"`
}

// NewReferrals is the request body for sending referrals to a list of phone numbers.
type NewReferrals struct {
	UserId       string   `json:"user_id" validate:"required"`
	PhoneNumbers []string `json:"phone_numbers" validate:"required,min=1"`
}

// Referral is the wire representation of a referral.
type Referral struct {
	Id             string    `json:"id"`
	ReferrerId     string    `json:"referrer_id"`
	ReferredPhone  string    `json:"referred_phone"`
	ReferredUserId string    `json:"referred_user_id,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// SendReferralsResult is the response for a bulk referral send.
type SendReferralsResult struct {
	Message   string     `json:"message"`
	Referrals []Referral `json:"referrals"`
}

// RegisterReferral is the request body linking a referred phone to its new user.
type RegisterReferral struct {
	Phone  string `json:"phone" validate:"required"`
	UserId string `json:"user_id" validate:"required"`
}

// RedeemReferral is the request body for redeeming a registered referral.
type RedeemReferral struct {
	NewUserId string `json:"new_user_id" validate:"required"`
}

// RedeemReferralResult is the response for a redeemed referral.
type RedeemReferralResult struct {
	ReferralId    string `json:"referral_id"`
	CorrelationId string `json:"correlation_id"`
	Amount        int64  `json:"amount"`
}

// CoinAdjustment is the request body for a manual admin adjustment.
type CoinAdjustment struct {
	UserId  string `json:"user_id" validate:"required"`
	Amount  int64  `json:"amount" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
	AdminId string `json:"admin_id" validate:"required"`
}

// CoinAdjustmentResult is the response for a manual adjustment.
type CoinAdjustmentResult struct {
	PreviousBalance int64 `json:"previous_balance"`
	NewBalance      int64 `json:"new_balance"`
	Applied         int64 `json:"applied"`
}

// AuditRecord is the wire representation of an admin adjustment audit record.
type AuditRecord struct {
	Id              string    `json:"id"`
	AdminId         string    `json:"admin_id"`
	UserId          string    `json:"user_id"`
	Amount          int64     `json:"amount"`
	Reason          string    `json:"reason"`
	PreviousBalance int64     `json:"previous_balance"`
	NewBalance      int64     `json:"new_balance"`
	Timestamp       time.Time `json:"timestamp"`
}
