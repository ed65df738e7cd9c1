package usecase

import (
	"context"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/repository"
	"pnrquality-service/pkg/logger"
	"pnrquality-service/pkg/metrics"
)

// BatchProcessor drains staged import batches from the document store and
// runs them through the importer.
type BatchProcessor struct {
	batchRepo  repository.ImportBatchRepository
	importer   *Importer
	logger     logger.Logger
	metrics    *metrics.Metrics
	fetchLimit int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(
	batchRepo repository.ImportBatchRepository,
	importer *Importer,
	logger logger.Logger,
	metrics *metrics.Metrics,
	fetchLimit int,
) *BatchProcessor {
	return &BatchProcessor{
		batchRepo:  batchRepo,
		importer:   importer,
		logger:     logger,
		metrics:    metrics,
		fetchLimit: fetchLimit,
	}
}

// ProcessPendingBatches imports every PENDING batch, oldest first. A
// failing batch is marked FAILED and does not stop the others.
func (bp *BatchProcessor) ProcessPendingBatches(ctx context.Context) error {
	batches, err := bp.batchRepo.FindPending(ctx, bp.fetchLimit)
	if err != nil {
		bp.metrics.ErrorsCount.WithLabelValues("find_pending").Inc()
		return err
	}
	if len(batches) == 0 {
		return nil
	}

	bp.logger.Info("Processing pending import batches", "count", len(batches))

	for _, batch := range batches {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		bp.processBatch(ctx, batch)
	}
	return nil
}

func (bp *BatchProcessor) processBatch(ctx context.Context, batch *entity.ImportBatch) {
	log := bp.logger.With("batchId", batch.BatchID, "rows", len(batch.Rows))
	log.Info("Importing batch")

	if err := bp.batchRepo.UpdateStatus(ctx, batch.BatchID, entity.StatusProcessing, time.Now()); err != nil {
		log.Error("Failed to claim batch", "error", err)
		bp.metrics.ErrorsCount.WithLabelValues("claim_batch").Inc()
		return
	}

	start := time.Now()
	summary, err := bp.importer.Import(ctx, batch.Rows)
	bp.metrics.ImportDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.Error("Batch import failed", "error", err)
		bp.metrics.ErrorsCount.WithLabelValues("import").Inc()
		if markErr := bp.batchRepo.MarkProcessed(ctx, batch.BatchID, entity.StatusFailed, err.Error(), nil); markErr != nil {
			log.Error("Failed to mark batch as failed", "error", markErr)
		}
		return
	}

	bp.metrics.BatchesImported.Inc()
	bp.metrics.RowsImported.Add(float64(len(batch.Rows) - summary.SkippedRows))
	bp.metrics.RowsSkipped.Add(float64(summary.SkippedRows))

	if err := bp.batchRepo.MarkProcessed(ctx, batch.BatchID, entity.StatusCompleted, "", &summary); err != nil {
		log.Error("Failed to mark batch as completed", "error", err)
		bp.metrics.ErrorsCount.WithLabelValues("mark_processed").Inc()
		return
	}

	log.Info("Batch imported",
		"pnrs", summary.PNRCount,
		"passengers", summary.PassengerCount,
		"contacts", summary.ContactCount,
		"skipped", summary.SkippedRows,
	)
}
