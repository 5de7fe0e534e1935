package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/snapbite/coin-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyEntry(t *testing.T) {
	account := &models.Account{ID: "user-1", Balance: 100, Version: 3}
	entry := &models.Transaction{
		ID:        "entry-1",
		AccountID: "user-1",
		Amount:    10,
		Kind:      models.ScanReward,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Without an idempotency key only the balance update and the
			// ledger append are written.
			return len(input.TransactItems) == 2
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		err := store.ApplyEntry(context.Background(), account, 110, entry)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success With Idempotency Key", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 3
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		keyed := *entry
		keyed.IdempotencyKey = "scan:event-1"

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		err := store.ApplyEntry(context.Background(), account, 110, &keyed)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		cancelled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		err := store.ApplyEntry(context.Background(), account, 110, entry)

		assert.ErrorIs(t, err, storage.ErrConcurrentModification)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Idempotency Key", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		cancelled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled)

		keyed := *entry
		keyed.IdempotencyKey = "scan:event-1"

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		err := store.ApplyEntry(context.Background(), account, 110, &keyed)

		assert.ErrorIs(t, err, storage.ErrDuplicateIdempotencyKey)
		assert.NotErrorIs(t, err, storage.ErrConcurrentModification)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		err := store.ApplyEntry(context.Background(), account, 110, entry)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply ledger entry")
		mockClient.AssertExpectations(t)
	})
}
