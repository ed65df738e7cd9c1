package repository

import (
	"context"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfficeRepository implements the OfficeRepository interface
type GormOfficeRepository struct {
	db *gorm.DB
}

// NewGormOfficeRepository creates a new GORM office repository
func NewGormOfficeRepository(db *gorm.DB) repository.OfficeRepository {
	return &GormOfficeRepository{
		db: db,
	}
}

// Offices GORM model for database mapping
type Offices struct {
	ID        uint           `gorm:"primaryKey"`
	OfficeID  string         `gorm:"column:office_id;unique"`
	Name      string         `gorm:"column:name"`
	Location  string         `gorm:"column:location"`
	Manager   string         `gorm:"column:manager"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Offices) TableName() string {
	return "m_offices"
}

// GetByOfficeID finds an office by its office code
func (r *GormOfficeRepository) GetByOfficeID(ctx context.Context, officeID string) (*entity.Office, error) {
	var office Offices
	result := r.db.WithContext(ctx).Where("office_id = ?", officeID).First(&office)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return toOfficeEntity(&office), nil
}

// List returns every office ordered by name
func (r *GormOfficeRepository) List(ctx context.Context) ([]*entity.Office, error) {
	var models []Offices
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	offices := make([]*entity.Office, 0, len(models))
	for i := range models {
		offices = append(offices, toOfficeEntity(&models[i]))
	}
	return offices, nil
}

// Upsert creates or updates an office keyed on office code
func (r *GormOfficeRepository) Upsert(ctx context.Context, office *entity.Office) error {
	model := &Offices{
		ID:       office.ID,
		OfficeID: office.OfficeID,
		Name:     office.Name,
		Location: office.Location,
		Manager:  office.Manager,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "office_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "location", "manager", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return result.Error
	}
	office.ID = model.ID
	return nil
}

func toOfficeEntity(model *Offices) *entity.Office {
	return &entity.Office{
		ID:        model.ID,
		OfficeID:  model.OfficeID,
		Name:      model.Name,
		Location:  model.Location,
		Manager:   model.Manager,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}
}
