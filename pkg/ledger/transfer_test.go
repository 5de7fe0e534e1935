package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/snapbite/coin-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		engine, store := newTestEngine(t)
		sender := createAccount(t, store, "+15550001111")
		receiver := createAccount(t, store, "+15550002222")

		_, err := engine.Apply(ctx, ApplyRequest{AccountID: sender.ID, Amount: 100, Kind: models.AdminAdjustment})
		assert.NoError(t, err)

		result, err := engine.Transfer(ctx, sender.ID, receiver.Phone, 40)
		assert.NoError(t, err)
		assert.Equal(t, int64(60), result.SenderBalance)
		assert.Equal(t, int64(40), result.ReceiverBalance)
		assert.NotEmpty(t, result.CorrelationID)

		senderEntries, err := store.ListTransactionsByAccount(ctx, sender.ID, 0)
		assert.NoError(t, err)
		receiverEntries, err := store.ListTransactionsByAccount(ctx, receiver.ID, 0)
		assert.NoError(t, err)

		assert.Equal(t, models.TransferOut, senderEntries[0].Kind)
		assert.Equal(t, int64(-40), senderEntries[0].Amount)
		assert.Equal(t, models.TransferIn, receiverEntries[0].Kind)
		assert.Equal(t, int64(40), receiverEntries[0].Amount)
		assert.Equal(t, result.CorrelationID, senderEntries[0].CorrelationID)
		assert.Equal(t, result.CorrelationID, receiverEntries[0].CorrelationID)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		engine, store := newTestEngine(t)
		sender := createAccount(t, store, "+15550001111")
		receiver := createAccount(t, store, "+15550002222")

		_, err := engine.Transfer(ctx, sender.ID, receiver.Phone, 40)
		assert.ErrorIs(t, err, storage.ErrInsufficientBalance)

		senderAfter, _ := store.GetAccount(ctx, sender.ID)
		receiverAfter, _ := store.GetAccount(ctx, receiver.ID)
		assert.Equal(t, int64(0), senderAfter.Balance)
		assert.Equal(t, int64(0), receiverAfter.Balance)

		receiverEntries, err := store.ListTransactionsByAccount(ctx, receiver.ID, 0)
		assert.NoError(t, err)
		assert.Empty(t, receiverEntries)
	})

	t.Run("Transfer To Self", func(t *testing.T) {
		engine, store := newTestEngine(t)
		sender := createAccount(t, store, "+15550001111")

		_, err := engine.Transfer(ctx, sender.ID, sender.Phone, 10)
		assert.ErrorIs(t, err, ErrTransferToSelf)
	})

	t.Run("Receiver Not Found", func(t *testing.T) {
		engine, store := newTestEngine(t)
		sender := createAccount(t, store, "+15550001111")

		_, err := engine.Transfer(ctx, sender.ID, "+15559999999", 10)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})

	t.Run("Non-Positive Amount", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		_, err := engine.Transfer(ctx, "user-1", "+15550002222", 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = engine.Transfer(ctx, "user-1", "+15550002222", -5)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Credit Failure Reverses Debit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		sender := &models.Account{ID: "sender", Phone: "+15550001111", Balance: 100, Version: 1}
		receiver := &models.Account{ID: "receiver", Phone: "+15550002222", Version: 1}

		mockStorage.On("GetAccountByPhone", mock.Anything, receiver.Phone).Return(receiver, nil)
		mockStorage.On("GetAccount", mock.Anything, "sender").Return(sender, nil)
		mockStorage.On("GetAccount", mock.Anything, "receiver").Return(receiver, nil)

		matchKind := func(kind models.TransactionKind) interface{} {
			return mock.MatchedBy(func(entry *models.Transaction) bool {
				return entry.Kind == kind
			})
		}
		mockStorage.On("ApplyEntry", mock.Anything, mock.Anything, mock.Anything, matchKind(models.TransferOut)).Return(nil)
		mockStorage.On("ApplyEntry", mock.Anything, mock.Anything, mock.Anything, matchKind(models.TransferIn)).Return(errors.New("write failed"))
		mockStorage.On("ApplyEntry", mock.Anything, mock.Anything, mock.Anything, matchKind(models.TransferReversal)).Return(nil)

		engine := New(mockStorage, nil, testRewards(), testLogger())
		_, err := engine.Transfer(ctx, "sender", receiver.Phone, 40)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "credit leg failed")
		// The reversal expectation must have fired.
		mockStorage.AssertExpectations(t)
	})
}
