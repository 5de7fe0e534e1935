package ledger

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/snapbite/coin-ledger/pkg/config"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/snapbite/coin-ledger/pkg/storage/memory"
	"github.com/snapbite/coin-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testRewards() config.Rewards {
	return config.Rewards{ScanReward: 1, DailyBonus: 5, ReferralBonus: 10, ApplyMaxAttempts: 3}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T) (*Engine, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, nil, testRewards(), testLogger()), store
}

func createAccount(t *testing.T, store *memory.Store, phone string) *models.Account {
	t.Helper()
	account, err := store.CreateAccount(context.Background(), &models.Account{
		ID:    uuid.New().String(),
		Phone: phone,
	})
	assert.NoError(t, err)
	return account
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Credit Then Debit", func(t *testing.T) {
		engine, store := newTestEngine(t)
		account := createAccount(t, store, "+15550001111")

		credit, err := engine.Apply(ctx, ApplyRequest{AccountID: account.ID, Amount: 100, Kind: models.AdminAdjustment})
		assert.NoError(t, err)
		assert.Equal(t, int64(100), credit.NewBalance)

		debit, err := engine.Apply(ctx, ApplyRequest{AccountID: account.ID, Amount: -30, Kind: models.TransferOut})
		assert.NoError(t, err)
		assert.Equal(t, int64(70), debit.NewBalance)

		current, err := store.GetAccount(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(70), current.Balance)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		engine, store := newTestEngine(t)
		account := createAccount(t, store, "+15550001111")

		_, err := engine.Apply(ctx, ApplyRequest{AccountID: account.ID, Amount: -1, Kind: models.TransferOut})
		assert.ErrorIs(t, err, storage.ErrInsufficientBalance)

		current, err := store.GetAccount(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), current.Balance)
		entries, err := store.ListTransactionsByAccount(ctx, account.ID, 0)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		_, err := engine.Apply(ctx, ApplyRequest{AccountID: "user-1", Amount: 0, Kind: models.AdminAdjustment})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Invalid Kind", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		_, err := engine.Apply(ctx, ApplyRequest{AccountID: "user-1", Amount: 10, Kind: "mystery"})
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		_, err := engine.Apply(ctx, ApplyRequest{AccountID: "nobody", Amount: 10, Kind: models.AdminAdjustment})
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})

	t.Run("Duplicate Idempotency Key", func(t *testing.T) {
		engine, store := newTestEngine(t)
		account := createAccount(t, store, "+15550001111")

		req := ApplyRequest{AccountID: account.ID, Amount: 10, Kind: models.ScanReward, IdempotencyKey: "scan:event-1"}
		_, err := engine.Apply(ctx, req)
		assert.NoError(t, err)

		_, err = engine.Apply(ctx, req)
		assert.ErrorIs(t, err, storage.ErrDuplicateIdempotencyKey)

		current, err := store.GetAccount(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), current.Balance)
	})

	t.Run("Balance Equals Ledger Sum", func(t *testing.T) {
		engine, store := newTestEngine(t)
		account := createAccount(t, store, "+15550001111")

		amounts := []int64{100, -40, 7, -3, 50}
		for _, amount := range amounts {
			_, err := engine.Apply(ctx, ApplyRequest{AccountID: account.ID, Amount: amount, Kind: models.AdminAdjustment})
			assert.NoError(t, err)
		}

		current, err := store.GetAccount(ctx, account.ID)
		assert.NoError(t, err)
		entries, err := store.ListTransactionsByAccount(ctx, account.ID, 0)
		assert.NoError(t, err)

		var sum int64
		for _, entry := range entries {
			sum += entry.Amount
		}
		assert.Equal(t, current.Balance, sum)
		assert.Len(t, entries, len(amounts))
	})

	t.Run("Concurrent Applies", func(t *testing.T) {
		store := memory.New()
		cfg := testRewards()
		// High contention needs more retry headroom than production defaults.
		cfg.ApplyMaxAttempts = 100
		engine := New(store, nil, cfg, testLogger())
		account := createAccount(t, store, "+15550001111")

		const workers = 10
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.Apply(ctx, ApplyRequest{AccountID: account.ID, Amount: 1, Kind: models.ScanReward})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		current, err := store.GetAccount(ctx, account.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(workers), current.Balance)
		entries, err := store.ListTransactionsByAccount(ctx, account.ID, 0)
		assert.NoError(t, err)
		assert.Len(t, entries, workers)
	})

	t.Run("Retries Exhausted", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		account := &models.Account{ID: "user-1", Balance: 100, Version: 1}
		mockStorage.On("GetAccount", mock.Anything, "user-1").Return(account, nil)
		mockStorage.On("ApplyEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ErrConcurrentModification)

		engine := New(mockStorage, nil, testRewards(), testLogger())
		_, err := engine.Apply(ctx, ApplyRequest{AccountID: "user-1", Amount: 10, Kind: models.AdminAdjustment})

		assert.ErrorIs(t, err, storage.ErrConcurrentModification)
		mockStorage.AssertNumberOfCalls(t, "ApplyEntry", 3)
	})
}
