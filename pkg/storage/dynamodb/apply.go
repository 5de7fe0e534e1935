package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

const idemGuardPrefix = "idem#"

// ApplyEntry atomically writes an account's new balance and appends the ledger
// entry. The balance update is conditioned on the version observed by the
// caller, which is the sole serialization point for mutations of one account.
//
// When the entry carries an idempotency key, a third item — an "idem#<key>"
// guard on the same ledger key schema — is put with attribute_not_exists, so a
// replayed event fails the whole transaction instead of paying twice.
func (s *Store) ApplyEntry(ctx context.Context, account *models.Account, newBalance int64, entry *models.Transaction) error {
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: conditional balance write on the unchanged version.
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: account.ID},
				},
				UpdateExpression:    aws.String("SET balance = :new_balance, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":new_balance": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newBalance)},
					":version":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
					":inc":         &types.AttributeValueMemberN{Value: "1"},
				},
			},
		},
		{
			// Operation 2: append the ledger entry.
			Put: &types.Put{
				TableName:           aws.String(s.LedgerTableName),
				Item:                entryAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			},
		},
	}

	if entry.IdempotencyKey != "" {
		guardAV, err := attributevalue.MarshalMap(map[string]any{
			"account_id": entry.AccountID,
			"entry_id":   idemGuardPrefix + entry.IdempotencyKey,
			"ref_entry":  entry.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal idempotency guard: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			// Operation 3: claim the idempotency key.
			Put: &types.Put{
				TableName:           aws.String(s.LedgerTableName),
				Item:                guardAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			},
		})
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Reason indices line up with the transact items: 0 is the version
			// check, 2 (when present) is the idempotency guard.
			if failedCondition(tce, 2) {
				return fmt.Errorf("account %s key %q: %w", entry.AccountID, entry.IdempotencyKey, storage.ErrDuplicateIdempotencyKey)
			}
			if failedCondition(tce, 0) {
				return fmt.Errorf("account %s: %w", entry.AccountID, storage.ErrConcurrentModification)
			}
		}
		return fmt.Errorf("failed to apply ledger entry: %w", err)
	}

	return nil
}

// failedCondition reports whether the transact item at index i was cancelled
// by its condition expression.
func failedCondition(tce *types.TransactionCanceledException, i int) bool {
	if i >= len(tce.CancellationReasons) {
		return false
	}
	reason := tce.CancellationReasons[i]
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}
