package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// GetTransaction retrieves a single ledger entry.
func (s *Store) GetTransaction(ctx context.Context, accountID, entryID string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"account_id": accountID,
		"entry_id":   entryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger entry key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.LedgerTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("entry %s: %w", entryID, storage.ErrTransactionNotFound)
	}

	var entry models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entry: %w", err)
	}

	return &entry, nil
}

// ListTransactionsByAccount retrieves an account's ledger entries, newest
// first. Idempotency guard items share the key schema and are filtered out.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string, limit int32) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LedgerTableName),
		KeyConditionExpression: aws.String("account_id = :account_id"),
		FilterExpression:       aws.String("NOT begins_with(entry_id, :idem)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account_id": &types.AttributeValueMemberS{Value: accountID},
			":idem":       &types.AttributeValueMemberS{Value: idemGuardPrefix},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger table: %w", err)
	}

	var entries []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	// Entry ids are random UUIDs, so order by creation time instead.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && int32(len(entries)) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}
