package storage

import (
	"context"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// AuditStore defines the interface for persisted admin adjustment audit records.
type AuditStore interface {
	// PutAuditRecord stores an audit record.
	PutAuditRecord(ctx context.Context, record *models.AuditRecord) error

	// ListAuditRecords retrieves recent audit records, newest first.
	ListAuditRecords(ctx context.Context, limit int32) ([]models.AuditRecord, error)
}
