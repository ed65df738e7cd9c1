package repository

import (
	"context"

	"pnrquality-service/internal/domain/entity"
)

// OfficeRepository defines the interface for the office reference table
type OfficeRepository interface {
	GetByOfficeID(ctx context.Context, officeID string) (*entity.Office, error)
	List(ctx context.Context) ([]*entity.Office, error)
	Upsert(ctx context.Context, office *entity.Office) error
}
