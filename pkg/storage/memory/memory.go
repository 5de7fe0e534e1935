// Package memory provides a mutex-backed Storage implementation with the same
// conditional-write semantics as the DynamoDB store. It backs the engine and
// invariant tests, where method-level mocks cannot exercise the version-check
// retry behaviour.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// Store implements the Storage interface in process memory.
type Store struct {
	mu        sync.Mutex
	accounts  map[string]*models.Account
	phones    map[string]string // phone -> account id
	ledger    map[string][]models.Transaction
	idemKeys  map[string]struct{} // "<account id>#<key>"
	referrals map[string]*models.Referral
	sent      map[string]struct{} // "<referrer id>#<phone>"
	audit     []models.AuditRecord
}

// New creates an empty in-memory Store.
func New() *Store {
	return &Store{
		accounts:  make(map[string]*models.Account),
		phones:    make(map[string]string),
		ledger:    make(map[string][]models.Transaction),
		idemKeys:  make(map[string]struct{}),
		referrals: make(map[string]*models.Referral),
		sent:      make(map[string]struct{}),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) CreateAccount(_ context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return nil, fmt.Errorf("account %s: %w", account.ID, storage.ErrAccountExists)
	}
	if _, ok := s.phones[account.Phone]; ok {
		return nil, fmt.Errorf("phone %s: %w", account.Phone, storage.ErrAccountExists)
	}

	account.Balance = 0
	account.Version = 1
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	stored := *account
	s.accounts[account.ID] = &stored
	s.phones[account.Phone] = account.ID
	return account, nil
}

func (s *Store) GetAccount(_ context.Context, accountID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAccountLocked(accountID)
}

func (s *Store) getAccountLocked(accountID string) (*models.Account, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, storage.ErrAccountNotFound)
	}
	copied := *account
	return &copied, nil
}

func (s *Store) GetAccountByPhone(_ context.Context, phone string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.phones[phone]
	if !ok {
		return nil, fmt.Errorf("phone %s: %w", phone, storage.ErrAccountNotFound)
	}
	return s.getAccountLocked(id)
}

func (s *Store) ListAccounts(_ context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// ApplyEntry mirrors the DynamoDB transact write: the balance update is
// conditioned on the version the caller read, and the idempotency key claim
// happens in the same critical section.
func (s *Store) ApplyEntry(_ context.Context, account *models.Account, newBalance int64, entry *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.accounts[account.ID]
	if !ok {
		return fmt.Errorf("account %s: %w", account.ID, storage.ErrAccountNotFound)
	}
	if current.Version != account.Version {
		return fmt.Errorf("account %s: %w", account.ID, storage.ErrConcurrentModification)
	}

	if entry.IdempotencyKey != "" {
		guard := entry.AccountID + "#" + entry.IdempotencyKey
		if _, used := s.idemKeys[guard]; used {
			return fmt.Errorf("account %s key %q: %w", entry.AccountID, entry.IdempotencyKey, storage.ErrDuplicateIdempotencyKey)
		}
		s.idemKeys[guard] = struct{}{}
	}

	current.Balance = newBalance
	current.Version++
	s.ledger[entry.AccountID] = append(s.ledger[entry.AccountID], *entry)
	return nil
}

func (s *Store) GetTransaction(_ context.Context, accountID, entryID string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.ledger[accountID] {
		if entry.ID == entryID {
			copied := entry
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("entry %s: %w", entryID, storage.ErrTransactionNotFound)
}

func (s *Store) ListTransactionsByAccount(_ context.Context, accountID string, limit int32) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.Transaction, len(s.ledger[accountID]))
	copy(entries, s.ledger[accountID])
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && int32(len(entries)) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) CreateReferral(_ context.Context, referral *models.Referral) (*models.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := referral.ReferrerID + "#" + referral.ReferredPhone
	if _, ok := s.sent[guard]; ok {
		return nil, fmt.Errorf("referrer %s phone %s: %w", referral.ReferrerID, referral.ReferredPhone, storage.ErrReferralExists)
	}

	referral.Status = models.ReferralPending
	if referral.CreatedAt.IsZero() {
		referral.CreatedAt = time.Now().UTC()
	}

	stored := *referral
	s.referrals[referral.ID] = &stored
	s.sent[guard] = struct{}{}
	return referral, nil
}

func (s *Store) GetReferral(_ context.Context, referralID string) (*models.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	referral, ok := s.referrals[referralID]
	if !ok {
		return nil, fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralNotFound)
	}
	copied := *referral
	return &copied, nil
}

func (s *Store) ListReferralsByReferrer(_ context.Context, referrerID string) ([]models.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var referrals []models.Referral
	for _, referral := range s.referrals {
		if referral.ReferrerID == referrerID {
			referrals = append(referrals, *referral)
		}
	}
	sort.Slice(referrals, func(i, j int) bool {
		return referrals[i].CreatedAt.After(referrals[j].CreatedAt)
	})
	return referrals, nil
}

func (s *Store) RegisterReferral(_ context.Context, phone, userID string) (*models.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, referral := range s.referrals {
		if referral.ReferredPhone == phone && referral.Status == models.ReferralPending {
			referral.Status = models.ReferralRegistered
			referral.ReferredUserID = userID
			copied := *referral
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("phone %s: %w", phone, storage.ErrReferralNotFound)
}

func (s *Store) RedeemReferral(_ context.Context, referralID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	referral, ok := s.referrals[referralID]
	if !ok {
		return fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralAlreadyRedeemed)
	}
	if referral.Status != models.ReferralRegistered {
		return fmt.Errorf("referral %s: %w", referralID, storage.ErrReferralAlreadyRedeemed)
	}
	referral.Status = models.ReferralRedeemed
	return nil
}

func (s *Store) PutAuditRecord(_ context.Context, record *models.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, *record)
	return nil
}

func (s *Store) ListAuditRecords(_ context.Context, limit int32) ([]models.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.AuditRecord, len(s.audit))
	copy(records, s.audit)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && int32(len(records)) > limit {
		records = records[:limit]
	}
	return records, nil
}
