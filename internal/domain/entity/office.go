package entity

import (
	"time"

	"gorm.io/gorm"
)

// Office is the reference table of ticketing offices, used to decorate
// per-office breakdowns with names.
type Office struct {
	ID        uint
	OfficeID  string
	Name      string
	Location  string
	Manager   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
