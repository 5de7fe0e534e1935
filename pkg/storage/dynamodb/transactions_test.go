package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	"github.com/snapbite/coin-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetTransaction(t *testing.T) {
	entry := &models.Transaction{ID: "entry-1", AccountID: "user-1", Amount: 10, Kind: models.ScanReward}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		entryAV, _ := attributevalue.MarshalMap(entry)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: entryAV}, nil)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		retrieved, err := store.GetTransaction(context.Background(), "user-1", "entry-1")

		assert.NoError(t, err)
		assert.Equal(t, entry.ID, retrieved.ID)
		assert.Equal(t, entry.Amount, retrieved.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		_, err := store.GetTransaction(context.Background(), "user-1", "entry-1")

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		_, err := store.GetTransaction(context.Background(), "user-1", "entry-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get ledger entry from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestListTransactionsByAccount(t *testing.T) {
	now := time.Now().UTC()
	entries := []models.Transaction{
		{ID: "entry-1", AccountID: "user-1", Amount: 10, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "entry-2", AccountID: "user-1", Amount: -5, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "entry-3", AccountID: "user-1", Amount: 1, CreatedAt: now},
	}

	marshalEntries := func(t *testing.T) []map[string]types.AttributeValue {
		var items []map[string]types.AttributeValue
		for _, e := range entries {
			av, err := attributevalue.MarshalMap(e)
			assert.NoError(t, err)
			items = append(items, av)
		}
		return items
	}

	t.Run("Success Newest First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: marshalEntries(t)}, nil)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		retrieved, err := store.ListTransactionsByAccount(context.Background(), "user-1", 0)

		assert.NoError(t, err)
		assert.Len(t, retrieved, 3)
		assert.Equal(t, "entry-3", retrieved[0].ID)
		assert.Equal(t, "entry-1", retrieved[2].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Limit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: marshalEntries(t)}, nil)

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		retrieved, err := store.ListTransactionsByAccount(context.Background(), "user-1", 2)

		assert.NoError(t, err)
		assert.Len(t, retrieved, 2)
		assert.Equal(t, "entry-3", retrieved[0].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "ledger", "referrals", "audit")
		_, err := store.ListTransactionsByAccount(context.Background(), "user-1", 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query ledger table")
		mockClient.AssertExpectations(t)
	})
}
