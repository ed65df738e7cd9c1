package repository

import (
	"context"

	"pnrquality-service/internal/domain/entity"
)

// PNRRepository defines the interface for booking record storage
type PNRRepository interface {
	// Create is the strict single-record path; the control number must
	// already have passed entity.NewPNR validation and duplicates fail.
	Create(ctx context.Context, pnr *entity.PNR) error

	// Upsert is the per-row update-or-create path keyed on control number.
	Upsert(ctx context.Context, pnr *entity.PNR) error

	// ReplaceAll atomically deletes the whole dataset and bulk-inserts the
	// given records with their passengers and contacts. Individual
	// uniqueness conflicts are skipped, never fatal; a storage failure
	// rolls the whole batch back.
	ReplaceAll(ctx context.Context, pnrs []*entity.PNR) error

	FindByControlNumber(ctx context.Context, controlNumber string) (*entity.PNR, error)

	// ListAll returns every PNR with passengers and contacts preloaded.
	ListAll(ctx context.Context) ([]*entity.PNR, error)

	// ListMissingContacts returns PNRs that own no contact rows at all.
	ListMissingContacts(ctx context.Context) ([]*entity.PNR, error)

	DeleteAll(ctx context.Context) error
}

// PassengerRepository covers targeted passenger maintenance outside the
// bulk import path.
type PassengerRepository interface {
	// UpdateMealCode rewrites one meal code across the dataset, returning
	// the number of passengers touched.
	UpdateMealCode(ctx context.Context, from, to string) (int64, error)
}
