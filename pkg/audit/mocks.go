package audit

import (
	"context"
	"sync"

	"github.com/snapbite/coin-ledger/pkg/models"
)

// NoOpPublisher is a publisher that does nothing.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, record *models.AuditRecord) error {
	return nil
}

// RecordingPublisher captures published records for tests.
type RecordingPublisher struct {
	mu      sync.Mutex
	Records []models.AuditRecord
	Err     error
}

// Publish appends the record, or returns the configured error.
func (p *RecordingPublisher) Publish(ctx context.Context, record *models.AuditRecord) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Records = append(p.Records, *record)
	return nil
}
