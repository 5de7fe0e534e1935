package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/snapbite/coin-ledger/pkg/models"
)

// PutAuditRecord stores an admin adjustment audit record.
// Writes are idempotent on the record id, so a redelivered queue message
// simply overwrites the identical item.
func (s *Store) PutAuditRecord(ctx context.Context, record *models.AuditRecord) error {
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.AuditTableName),
		Item:      recordAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put audit record in DynamoDB: %w", err)
	}

	return nil
}

// ListAuditRecords retrieves recent audit records, newest first.
func (s *Store) ListAuditRecords(ctx context.Context, limit int32) ([]models.AuditRecord, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.AuditTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit table: %w", err)
	}

	var records []models.AuditRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	if limit > 0 && int32(len(records)) > limit {
		records = records[:limit]
	}

	return records, nil
}
