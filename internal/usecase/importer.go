package usecase

import (
	"context"
	"fmt"
	"strings"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/repository"
	"pnrquality-service/pkg/logger"
	"pnrquality-service/pkg/utils"
)

// Importer turns raw tabular rows into the normalized PNR/Passenger/Contact
// graph and replaces the dataset with it.
type Importer struct {
	pnrRepo repository.PNRRepository
	logger  logger.Logger
}

// NewImporter creates a new importer
func NewImporter(pnrRepo repository.PNRRepository, logger logger.Logger) *Importer {
	return &Importer{
		pnrRepo: pnrRepo,
		logger:  logger,
	}
}

type passengerKey struct {
	controlNumber string
	surname       string
	firstName     string
}

type contactKey struct {
	controlNumber string
	contactType   string
	contactDetail string
}

// BuildPNRs deduplicates raw rows into PNR entities. One PNR per distinct
// non-empty control number, with the first row encountered supplying the
// PNR-level attributes; at most one passenger per (control, surname, first)
// and one contact per (control, type, detail), first occurrence winning.
// Pure: no storage access.
func BuildPNRs(rows []entity.ImportRow) ([]*entity.PNR, entity.ImportSummary) {
	var summary entity.ImportSummary

	pnrsByControl := make(map[string]*entity.PNR)
	var order []string
	seenPassengers := make(map[passengerKey]bool)
	seenContacts := make(map[contactKey]bool)

	for _, row := range rows {
		controlNumber := utils.NormalizeField(row.ControlNumber)
		if controlNumber == "" {
			summary.SkippedRows++
			continue
		}

		pnr, seen := pnrsByControl[controlNumber]
		if !seen {
			pnr = &entity.PNR{
				ControlNumber:          controlNumber,
				OfficeID:               utils.NormalizeField(row.OfficeID),
				Agent:                  utils.NormalizeField(row.Agent),
				DeliverySystemCompany:  utils.NormalizeField(row.DeliverySystemCompany),
				DeliverySystemLocation: utils.NormalizeField(row.DeliverySystemLocation),
				CreationDate:           utils.ParseCompactDate(row.CreationDate),
			}
			pnrsByControl[controlNumber] = pnr
			order = append(order, controlNumber)
			summary.PNRCount++
		}

		// The first row of a PNR always contributes its attributes
		contributed := !seen

		surname := utils.NormalizeField(row.Surname)
		firstName := utils.NormalizeField(row.FirstName)
		if surname != "" || firstName != "" {
			pk := passengerKey{controlNumber, surname, firstName}
			if !seenPassengers[pk] {
				seenPassengers[pk] = true
				pnr.Passengers = append(pnr.Passengers, entity.Passenger{
					Surname:       surname,
					FirstName:     firstName,
					FFNumber:      utils.NormalizeField(row.FFNumber),
					Meal:          utils.NormalizeField(row.Meal),
					SeatRowNumber: utils.NormalizeField(row.SeatRowNumber),
					SeatColumn:    utils.NormalizeField(row.SeatColumn),
				})
				summary.PassengerCount++
				contributed = true
			}
		}

		contactType := utils.NormalizeField(row.ContactType)
		contactDetail := strings.TrimSpace(row.ContactDetail)
		if contactType != "" || contactDetail != "" {
			ck := contactKey{controlNumber, contactType, contactDetail}
			if !seenContacts[ck] {
				seenContacts[ck] = true
				pnr.Contacts = append(pnr.Contacts, entity.Contact{
					ContactType:   contactType,
					ContactDetail: contactDetail,
				})
				summary.ContactCount++
				contributed = true
			}
		}

		if !contributed {
			summary.SkippedRows++
		}
	}

	pnrs := make([]*entity.PNR, 0, len(order))
	for _, controlNumber := range order {
		pnrs = append(pnrs, pnrsByControl[controlNumber])
	}
	return pnrs, summary
}

// Import replaces the whole dataset with the deduplicated content of the
// given rows. The replace is atomic; per-row duplicates inside the batch
// are skipped, never fatal.
func (i *Importer) Import(ctx context.Context, rows []entity.ImportRow) (entity.ImportSummary, error) {
	pnrs, summary := BuildPNRs(rows)

	i.logger.Info("Importing dataset",
		"rows", len(rows),
		"pnrs", summary.PNRCount,
		"passengers", summary.PassengerCount,
		"contacts", summary.ContactCount,
		"skipped", summary.SkippedRows,
	)

	if err := i.pnrRepo.ReplaceAll(ctx, pnrs); err != nil {
		return entity.ImportSummary{}, fmt.Errorf("replace dataset: %w", err)
	}
	return summary, nil
}
