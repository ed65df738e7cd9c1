package entity

import (
	"time"

	"gorm.io/gorm"
)

// Passenger identity within a PNR is (surname, first name). The four
// completeness fields are blank-or-value.
type Passenger struct {
	ID            uint
	PNRID         uint
	Surname       string
	FirstName     string
	FFNumber      string
	Meal          string
	SeatRowNumber string
	SeatColumn    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
}

// Seat is the derived full seat designation, e.g. "12A". Empty unless both
// row and column are present.
func (p Passenger) Seat() string {
	if p.SeatRowNumber == "" || p.SeatColumn == "" {
		return ""
	}
	return p.SeatRowNumber + p.SeatColumn
}
