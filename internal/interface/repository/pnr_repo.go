package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPNRRepository implements the PNRRepository interface
type GormPNRRepository struct {
	db *gorm.DB
}

// NewGormPNRRepository creates a new GORM PNR repository
func NewGormPNRRepository(db *gorm.DB) repository.PNRRepository {
	return &GormPNRRepository{
		db: db,
	}
}

// PNRs GORM model for database mapping
type PNRs struct {
	ID                     uint           `gorm:"primaryKey"`
	ControlNumber          string         `gorm:"column:control_number;uniqueIndex"`
	OfficeID               string         `gorm:"column:office_id;index"`
	Agent                  string         `gorm:"column:agent"`
	DeliverySystemCompany  string         `gorm:"column:delivery_system_company;index"`
	DeliverySystemLocation string         `gorm:"column:delivery_system_location"`
	CreationDate           *time.Time     `gorm:"column:creation_date;index"`
	Contacts               []Contacts     `gorm:"foreignKey:PNRID;constraint:OnDelete:CASCADE"`
	Passengers             []Passengers   `gorm:"foreignKey:PNRID;constraint:OnDelete:CASCADE"`
	DeletedAt              gorm.DeletedAt `gorm:"index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName overrides the default table name
func (PNRs) TableName() string {
	return "t_pnrs"
}

// Passengers GORM model for database mapping
type Passengers struct {
	ID            uint           `gorm:"primaryKey"`
	PNRID         uint           `gorm:"column:pnr_id;uniqueIndex:idx_passenger_identity"`
	Surname       string         `gorm:"column:surname;uniqueIndex:idx_passenger_identity"`
	FirstName     string         `gorm:"column:first_name;uniqueIndex:idx_passenger_identity"`
	FFNumber      string         `gorm:"column:ff_number"`
	Meal          string         `gorm:"column:meal"`
	SeatRowNumber string         `gorm:"column:seat_row_number"`
	SeatColumn    string         `gorm:"column:seat_column"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (Passengers) TableName() string {
	return "t_passengers"
}

// Contacts GORM model for database mapping
type Contacts struct {
	ID            uint           `gorm:"primaryKey"`
	PNRID         uint           `gorm:"column:pnr_id;uniqueIndex:idx_contact_identity"`
	ContactType   string         `gorm:"column:contact_type;uniqueIndex:idx_contact_identity"`
	ContactDetail string         `gorm:"column:contact_detail;uniqueIndex:idx_contact_identity"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (Contacts) TableName() string {
	return "t_contacts"
}

// AutoMigrate creates or updates the relational schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&PNRs{}, &Passengers{}, &Contacts{}, &Offices{})
}

// Create inserts a single validated PNR. Duplicate control numbers fail.
func (r *GormPNRRepository) Create(ctx context.Context, pnr *entity.PNR) error {
	if strings.TrimSpace(pnr.ControlNumber) == "" {
		return fmt.Errorf("control number must not be empty")
	}
	model := toPNRModel(pnr)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	pnr.ID = model.ID
	return nil
}

// Upsert creates or updates a PNR keyed on control number.
func (r *GormPNRRepository) Upsert(ctx context.Context, pnr *entity.PNR) error {
	model := toPNRModel(pnr)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "control_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"office_id", "agent", "delivery_system_company",
			"delivery_system_location", "creation_date", "updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		return result.Error
	}
	pnr.ID = model.ID
	return nil
}

// ReplaceAll deletes the whole dataset and bulk-inserts the new one inside
// a single transaction. Duplicate rows are skipped via ON CONFLICT DO
// NOTHING rather than aborting the batch.
func (r *GormPNRRepository) ReplaceAll(ctx context.Context, pnrs []*entity.PNR) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&Contacts{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&Passengers{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&PNRs{}).Error; err != nil {
			return err
		}

		skipConflicts := clause.OnConflict{DoNothing: true}
		for _, pnr := range pnrs {
			model := toPNRModel(pnr)
			if err := tx.Clauses(skipConflicts).Create(model).Error; err != nil {
				return err
			}
			pnr.ID = model.ID
		}
		return nil
	})
}

// FindByControlNumber loads one PNR with its passengers and contacts
func (r *GormPNRRepository) FindByControlNumber(ctx context.Context, controlNumber string) (*entity.PNR, error) {
	var model PNRs
	result := r.db.WithContext(ctx).
		Preload("Contacts").Preload("Passengers").
		Where("control_number = ?", controlNumber).First(&model)

	if result.Error != nil {
		return nil, result.Error
	}
	return toPNREntity(&model), nil
}

// ListAll returns every PNR with passengers and contacts preloaded
func (r *GormPNRRepository) ListAll(ctx context.Context) ([]*entity.PNR, error) {
	var models []PNRs
	result := r.db.WithContext(ctx).
		Preload("Contacts").Preload("Passengers").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	pnrs := make([]*entity.PNR, 0, len(models))
	for i := range models {
		pnrs = append(pnrs, toPNREntity(&models[i]))
	}
	return pnrs, nil
}

// ListMissingContacts returns PNRs that own no contact rows
func (r *GormPNRRepository) ListMissingContacts(ctx context.Context) ([]*entity.PNR, error) {
	var models []PNRs
	result := r.db.WithContext(ctx).
		Preload("Passengers").
		Where("NOT EXISTS (SELECT 1 FROM t_contacts c WHERE c.pnr_id = t_pnrs.id AND c.deleted_at IS NULL)").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	pnrs := make([]*entity.PNR, 0, len(models))
	for i := range models {
		pnrs = append(pnrs, toPNREntity(&models[i]))
	}
	return pnrs, nil
}

// DeleteAll removes the whole dataset, children first
func (r *GormPNRRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&Contacts{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&Passengers{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&PNRs{}).Error
	})
}

// GormPassengerRepository implements the PassengerRepository interface
type GormPassengerRepository struct {
	db *gorm.DB
}

// NewGormPassengerRepository creates a new GORM passenger repository
func NewGormPassengerRepository(db *gorm.DB) repository.PassengerRepository {
	return &GormPassengerRepository{
		db: db,
	}
}

// UpdateMealCode rewrites one meal code across the dataset
func (r *GormPassengerRepository) UpdateMealCode(ctx context.Context, from, to string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Passengers{}).
		Where("meal = ?", from).
		Update("meal", to)
	return result.RowsAffected, result.Error
}

// Convert domain entity to GORM model
func toPNRModel(pnr *entity.PNR) *PNRs {
	model := &PNRs{
		ID:                     pnr.ID,
		ControlNumber:          pnr.ControlNumber,
		OfficeID:               pnr.OfficeID,
		Agent:                  pnr.Agent,
		DeliverySystemCompany:  pnr.DeliverySystemCompany,
		DeliverySystemLocation: pnr.DeliverySystemLocation,
		CreationDate:           pnr.CreationDate,
		CreatedAt:              pnr.CreatedAt,
		UpdatedAt:              pnr.UpdatedAt,
	}
	for _, contact := range pnr.Contacts {
		model.Contacts = append(model.Contacts, Contacts{
			ContactType:   contact.ContactType,
			ContactDetail: contact.ContactDetail,
		})
	}
	for _, pax := range pnr.Passengers {
		model.Passengers = append(model.Passengers, Passengers{
			Surname:       pax.Surname,
			FirstName:     pax.FirstName,
			FFNumber:      pax.FFNumber,
			Meal:          pax.Meal,
			SeatRowNumber: pax.SeatRowNumber,
			SeatColumn:    pax.SeatColumn,
		})
	}
	return model
}

// Convert GORM model to domain entity
func toPNREntity(model *PNRs) *entity.PNR {
	pnr := &entity.PNR{
		ID:                     model.ID,
		ControlNumber:          model.ControlNumber,
		OfficeID:               model.OfficeID,
		Agent:                  model.Agent,
		DeliverySystemCompany:  model.DeliverySystemCompany,
		DeliverySystemLocation: model.DeliverySystemLocation,
		CreationDate:           model.CreationDate,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
		DeletedAt:              model.DeletedAt,
	}
	for _, contact := range model.Contacts {
		pnr.Contacts = append(pnr.Contacts, entity.Contact{
			ID:            contact.ID,
			PNRID:         contact.PNRID,
			ContactType:   contact.ContactType,
			ContactDetail: contact.ContactDetail,
			CreatedAt:     contact.CreatedAt,
			UpdatedAt:     contact.UpdatedAt,
		})
	}
	for _, pax := range model.Passengers {
		pnr.Passengers = append(pnr.Passengers, entity.Passenger{
			ID:            pax.ID,
			PNRID:         pax.PNRID,
			Surname:       pax.Surname,
			FirstName:     pax.FirstName,
			FFNumber:      pax.FFNumber,
			Meal:          pax.Meal,
			SeatRowNumber: pax.SeatRowNumber,
			SeatColumn:    pax.SeatColumn,
			CreatedAt:     pax.CreatedAt,
			UpdatedAt:     pax.UpdatedAt,
		})
	}
	return pnr
}
