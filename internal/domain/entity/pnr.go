package entity

import (
	"fmt"
	"strings"
	"time"

	"pnrquality-service/pkg/quality"

	"gorm.io/gorm"
)

// PNR is the root booking record. ControlNumber is unique across the
// dataset; contacts and passengers are cascade-deleted with it.
type PNR struct {
	ID                     uint
	ControlNumber          string
	OfficeID               string
	Agent                  string
	DeliverySystemCompany  string
	DeliverySystemLocation string
	CreationDate           *time.Time
	Contacts               []Contact
	Passengers             []Passenger
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt
}

// NewPNR is the strict creation path: it rejects an empty or
// whitespace-only control number with an error. Bulk import deliberately
// does not use it and skips such rows instead.
func NewPNR(controlNumber string) (*PNR, error) {
	controlNumber = strings.TrimSpace(controlNumber)
	if controlNumber == "" {
		return nil, fmt.Errorf("control number must not be empty")
	}
	return &PNR{ControlNumber: controlNumber}, nil
}

// IsReachable reports whether at least one contact is usable for customer
// outreach, i.e. is a valid email or a valid phone under its declared type.
func (p *PNR) IsReachable() bool {
	for _, contact := range p.Contacts {
		c := contact.Classify()
		if c.IsValidEmail || c.IsValidPhone {
			return true
		}
	}
	return false
}

// HasWrongFormatContact reports whether any contact carries a non-empty
// detail that is neither a valid email nor a valid phone for its type.
func (p *PNR) HasWrongFormatContact() bool {
	for _, contact := range p.Contacts {
		if strings.TrimSpace(contact.ContactDetail) == "" {
			continue
		}
		c := contact.Classify()
		if !c.IsValidEmail && !c.IsValidPhone {
			return true
		}
	}
	return false
}

// HasWronglyPlacedContact reports whether any contact's detected shape
// mismatches the category of its declared type.
func (p *PNR) HasWronglyPlacedContact() bool {
	for _, contact := range p.Contacts {
		if contact.Classify().IsWronglyPlaced {
			return true
		}
	}
	return false
}

// HasFrequentFlyer reports whether any passenger carries an FF number.
func (p *PNR) HasFrequentFlyer() bool {
	for _, pax := range p.Passengers {
		if pax.FFNumber != "" {
			return true
		}
	}
	return false
}

// HasMeal reports whether any passenger has a meal selection.
func (p *PNR) HasMeal() bool {
	for _, pax := range p.Passengers {
		if pax.Meal != "" {
			return true
		}
	}
	return false
}

// HasSeat reports whether any passenger has a complete seat assignment.
// Row and column are both required; either alone does not count.
func (p *PNR) HasSeat() bool {
	for _, pax := range p.Passengers {
		if pax.SeatRowNumber != "" && pax.SeatColumn != "" {
			return true
		}
	}
	return false
}

// QualityScore is the per-record scoring path. The bulk path
// (usecase.ReportBuilder feeding quality.ScoreSet) consumes exactly these
// values, so the two can never disagree.
func (p *PNR) QualityScore() int {
	return quality.Score(p.IsReachable(), p.HasFrequentFlyer(), p.HasMeal(), p.HasSeat())
}
