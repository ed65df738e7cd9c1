package entity

import (
	"time"

	"pnrquality-service/pkg/quality"

	"gorm.io/gorm"
)

// ContactTypes is the fixed enumeration of contact remark codes.
var ContactTypes = []string{
	quality.TypeAP,
	quality.TypeAPE,
	quality.TypeAPM,
	quality.TypeCTCE,
	quality.TypeCTCEM,
	quality.TypeCTCM,
}

// Contact is one raw contact line on a PNR. The validity and placement
// flags are derived, never stored.
type Contact struct {
	ID            uint
	PNRID         uint
	ContactType   string
	ContactDetail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
}

// Classify runs shape detection and format validation for this contact.
func (c *Contact) Classify() quality.Classification {
	return quality.Classify(c.ContactType, c.ContactDetail)
}
