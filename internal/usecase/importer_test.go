package usecase

import (
	"context"
	"errors"
	"testing"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePNRRepository records what the importer hands to storage.
type fakePNRRepository struct {
	replaced   []*entity.PNR
	replaceErr error
}

func (f *fakePNRRepository) Create(ctx context.Context, pnr *entity.PNR) error { return nil }
func (f *fakePNRRepository) Upsert(ctx context.Context, pnr *entity.PNR) error { return nil }
func (f *fakePNRRepository) ReplaceAll(ctx context.Context, pnrs []*entity.PNR) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = pnrs
	return nil
}
func (f *fakePNRRepository) FindByControlNumber(ctx context.Context, controlNumber string) (*entity.PNR, error) {
	return nil, nil
}
func (f *fakePNRRepository) ListAll(ctx context.Context) ([]*entity.PNR, error) {
	return f.replaced, nil
}
func (f *fakePNRRepository) ListMissingContacts(ctx context.Context) ([]*entity.PNR, error) {
	return nil, nil
}
func (f *fakePNRRepository) DeleteAll(ctx context.Context) error { return nil }

func row(control, surname, first, contactType, contactDetail string) entity.ImportRow {
	return entity.ImportRow{
		ControlNumber: control,
		Surname:       surname,
		FirstName:     first,
		ContactType:   contactType,
		ContactDetail: contactDetail,
		OfficeID:      "NBO001",
		Agent:         "AGENT01",
		CreationDate:  "010124",
	}
}

func TestBuildPNRsDeduplicatesPassengers(t *testing.T) {
	rows := []entity.ImportRow{
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
		row("PNR1", "DOE", "JOHN", "APM", "+254700000000"),
		row("PNR1", "SMITH", "JANE", "APE", "jane@example.com"),
	}

	pnrs, summary := BuildPNRs(rows)

	require.Len(t, pnrs, 1)
	assert.Equal(t, 1, summary.PNRCount)
	assert.Equal(t, 2, summary.PassengerCount, "JOHN DOE and JANE SMITH")
	assert.Equal(t, 3, summary.ContactCount, "three distinct type/detail pairs")
	assert.Equal(t, 0, summary.SkippedRows)
	assert.Len(t, pnrs[0].Passengers, 2)
	assert.Len(t, pnrs[0].Contacts, 3)
}

func TestBuildPNRsFirstRowWinsAttributes(t *testing.T) {
	first := row("PNR1", "DOE", "JOHN", "APE", "john@example.com")
	second := row("PNR1", "SMITH", "JANE", "APM", "+254700000000")
	second.OfficeID = "MBA009"
	second.Agent = "AGENT99"
	second.CreationDate = "020224"

	pnrs, _ := BuildPNRs([]entity.ImportRow{first, second})

	require.Len(t, pnrs, 1)
	pnr := pnrs[0]
	assert.Equal(t, "NBO001", pnr.OfficeID, "later rows do not override PNR-level fields")
	assert.Equal(t, "AGENT01", pnr.Agent)
	require.NotNil(t, pnr.CreationDate)
	assert.Equal(t, "2024-01-01", pnr.CreationDate.Format("2006-01-02"))
}

func TestBuildPNRsSkipsEmptyControlNumbers(t *testing.T) {
	rows := []entity.ImportRow{
		row("", "DOE", "JOHN", "APE", "john@example.com"),
		row("   ", "SMITH", "JANE", "APM", "+254700000000"),
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
	}

	pnrs, summary := BuildPNRs(rows)

	assert.Len(t, pnrs, 1)
	assert.Equal(t, 2, summary.SkippedRows)
}

func TestBuildPNRsCountsFullyDuplicateRows(t *testing.T) {
	rows := []entity.ImportRow{
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
	}

	pnrs, summary := BuildPNRs(rows)

	require.Len(t, pnrs, 1)
	assert.Equal(t, 1, summary.PassengerCount)
	assert.Equal(t, 1, summary.ContactCount)
	assert.Equal(t, 1, summary.SkippedRows)
}

func TestBuildPNRsUnparseableDateYieldsNoDate(t *testing.T) {
	r := row("PNR1", "DOE", "JOHN", "APE", "john@example.com")
	r.CreationDate = "abc"

	pnrs, _ := BuildPNRs([]entity.ImportRow{r})

	require.Len(t, pnrs, 1)
	assert.Nil(t, pnrs[0].CreationDate)
}

func TestBuildPNRsPreservesEncounterOrder(t *testing.T) {
	rows := []entity.ImportRow{
		row("PNR2", "A", "A", "APE", "a@example.com"),
		row("PNR1", "B", "B", "APE", "b@example.com"),
		row("PNR2", "C", "C", "APE", "c@example.com"),
	}

	pnrs, _ := BuildPNRs(rows)

	require.Len(t, pnrs, 2)
	assert.Equal(t, "PNR2", pnrs[0].ControlNumber)
	assert.Equal(t, "PNR1", pnrs[1].ControlNumber)
}

func TestImportReplacesDataset(t *testing.T) {
	repo := &fakePNRRepository{}
	importer := NewImporter(repo, logger.NewNop())

	summary, err := importer.Import(context.Background(), []entity.ImportRow{
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
		row("PNR2", "SMITH", "JANE", "APM", "+254700000000"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.PNRCount)
	assert.Len(t, repo.replaced, 2)
}

func TestImportPropagatesStorageFailure(t *testing.T) {
	repo := &fakePNRRepository{replaceErr: errors.New("connection lost")}
	importer := NewImporter(repo, logger.NewNop())

	_, err := importer.Import(context.Background(), []entity.ImportRow{
		row("PNR1", "DOE", "JOHN", "APE", "john@example.com"),
	})

	assert.ErrorContains(t, err, "connection lost")
}
