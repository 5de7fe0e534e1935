// Package audit delivers admin adjustment audit records to an external sink.
// Delivery is best-effort: a failed publish is logged by the caller and never
// rolls back the balance change it describes.
package audit

import (
	"context"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// Publisher defines the interface for emitting audit records.
type Publisher interface {
	Publish(ctx context.Context, record *models.AuditRecord) error
}
