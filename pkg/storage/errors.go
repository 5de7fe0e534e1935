package storage

import "errors"

// ErrAccountNotFound is returned when no account exists for the given id or phone number.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account whose id or phone number is already taken.
var ErrAccountExists = errors.New("account already exists")

// ErrInsufficientBalance is returned when a debit would drive a balance below zero.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrDuplicateIdempotencyKey is returned when a ledger entry with the same
// (account, idempotency key) pair has already been written.
var ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

// ErrConcurrentModification is returned when the conditional balance write
// lost a race with another mutation of the same account. The whole logical
// operation is retryable.
var ErrConcurrentModification = errors.New("account modified concurrently")

// ErrTransactionNotFound is returned when no ledger entry exists for the given id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrReferralNotFound is returned when no referral exists for the given id or phone.
var ErrReferralNotFound = errors.New("referral not found")

// ErrReferralExists is returned when the referrer has already referred the given phone number.
var ErrReferralExists = errors.New("referral already exists")

// ErrReferralAlreadyRedeemed is returned when a referral is not in a redeemable state.
var ErrReferralAlreadyRedeemed = errors.New("referral already redeemed")
