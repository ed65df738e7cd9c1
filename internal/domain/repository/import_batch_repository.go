package repository

import (
	"context"
	"time"

	"pnrquality-service/internal/domain/entity"
)

// ImportBatchRepository defines the interface for the staged-upload store
type ImportBatchRepository interface {
	Save(ctx context.Context, batch *entity.ImportBatch) error
	FindByBatchID(ctx context.Context, batchID string) (*entity.ImportBatch, error)
	FindPending(ctx context.Context, limit int) ([]*entity.ImportBatch, error)
	UpdateStatus(ctx context.Context, batchID, status string, startedAt time.Time) error
	MarkProcessed(ctx context.Context, batchID, status, errorDetail string, summary *entity.ImportSummary) error
	// ResetProcessing returns batches stuck in PROCESSING (e.g. after a
	// crash) to PENDING.
	ResetProcessing(ctx context.Context) error
}
