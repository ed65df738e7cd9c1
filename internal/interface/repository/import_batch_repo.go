// internal/interface/repository/import_batch_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoImportBatchRepository implements the ImportBatchRepository interface
type MongoImportBatchRepository struct {
	collection *mongo.Collection
}

// NewMongoImportBatchRepository creates a new MongoDB import batch repository
func NewMongoImportBatchRepository(db *mongo.Database) repository.ImportBatchRepository {
	collection := db.Collection("importBatches")

	// Create indexes for better performance
	ctx := context.Background()

	batchIDIndex := mongo.IndexModel{
		Keys:    bson.M{"batchId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on processStatus for finding batches by status
	processStatusIndex := mongo.IndexModel{
		Keys: bson.M{"processStatus": 1},
	}

	// Compound index for finding pending batches efficiently
	pendingIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "processStatus", Value: 1},
			{Key: "receivedAt", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		batchIDIndex,
		processStatusIndex,
		pendingIndex,
	})

	return &MongoImportBatchRepository{
		collection: collection,
	}
}

// Save stages a batch for import
func (r *MongoImportBatchRepository) Save(ctx context.Context, batch *entity.ImportBatch) error {
	now := time.Now()
	if batch.ID == "" {
		batch.ID = primitive.NewObjectID().Hex()
		batch.CreatedAt = now
	}
	batch.UpdatedAt = now
	if batch.ProcessStatus == "" {
		batch.ProcessStatus = entity.StatusPending
	}
	if batch.ReceivedAt.IsZero() {
		batch.ReceivedAt = now
	}

	_, err := r.collection.InsertOne(ctx, batch)
	return err
}

// FindByBatchID finds a batch by its batch ID
func (r *MongoImportBatchRepository) FindByBatchID(ctx context.Context, batchID string) (*entity.ImportBatch, error) {
	var batch entity.ImportBatch
	err := r.collection.FindOne(ctx, bson.M{"batchId": batchID}).Decode(&batch)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// FindPending finds batches waiting for import, oldest first
func (r *MongoImportBatchRepository) FindPending(ctx context.Context, limit int) ([]*entity.ImportBatch, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"processStatus": ""},
			{"processStatus": entity.StatusPending},
			{"processStatus": bson.M{"$exists": false}},
		},
	}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "receivedAt", Value: 1}}, // Import oldest first
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var batches []*entity.ImportBatch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, err
	}

	return batches, nil
}

// UpdateStatus updates just the status and started time
func (r *MongoImportBatchRepository) UpdateStatus(ctx context.Context, batchID, status string, startedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"processStatus": status,
			"updatedAt":     time.Now(),
		},
	}

	// Only set processStartedAt when moving to PROCESSING
	if status == entity.StatusProcessing && !startedAt.IsZero() {
		update["$set"].(bson.M)["processStartedAt"] = startedAt
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"batchId": batchID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no batch found with batchId: %s", batchID)
	}

	return nil
}

// MarkProcessed marks a batch as imported with its outcome
func (r *MongoImportBatchRepository) MarkProcessed(ctx context.Context, batchID, status, errorDetail string, summary *entity.ImportSummary) error {
	update := bson.M{
		"$set": bson.M{
			"processedAt":   time.Now(),
			"processStatus": status,
			"updatedAt":     time.Now(),
		},
	}

	if summary != nil {
		update["$set"].(bson.M)["summary"] = summary
	}

	if errorDetail != "" {
		update["$set"].(bson.M)["errorDetail"] = errorDetail
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"batchId": batchID},
		update,
	)

	if err != nil {
		return fmt.Errorf("failed to mark as processed: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no batch found with batchId: %s", batchID)
	}

	return nil
}

// ResetProcessing resets batches stuck in PROCESSING state back to PENDING
func (r *MongoImportBatchRepository) ResetProcessing(ctx context.Context) error {
	// Batches processing for more than 5 minutes are considered stale
	staleTime := time.Now().Add(-5 * time.Minute)

	filter := bson.M{
		"processStatus": entity.StatusProcessing,
		"$or": []bson.M{
			{"processStartedAt": bson.M{"$lt": staleTime}},
			{"processStartedAt": bson.M{"$exists": false}},
		},
	}

	update := bson.M{
		"$set": bson.M{
			"processStatus": entity.StatusPending,
			"errorDetail":   "Reset from stale PROCESSING state",
			"updatedAt":     time.Now(),
		},
	}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
