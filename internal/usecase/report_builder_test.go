package usecase

import (
	"context"
	"testing"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/query"
	"pnrquality-service/pkg/logger"
	"pnrquality-service/pkg/quality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOfficeRepository struct {
	offices []*entity.Office
}

func (f *fakeOfficeRepository) GetByOfficeID(ctx context.Context, officeID string) (*entity.Office, error) {
	for _, o := range f.offices {
		if o.OfficeID == officeID {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOfficeRepository) List(ctx context.Context) ([]*entity.Office, error) {
	return f.offices, nil
}
func (f *fakeOfficeRepository) Upsert(ctx context.Context, office *entity.Office) error { return nil }

func reachablePNR(control, office, company string) *entity.PNR {
	return &entity.PNR{
		ControlNumber:         control,
		OfficeID:              office,
		DeliverySystemCompany: company,
		Contacts: []entity.Contact{
			{ContactType: quality.TypeAPE, ContactDetail: control + "@example.com"},
		},
	}
}

func TestSummarizeEmptySet(t *testing.T) {
	summary := Summarize(nil, query.All{}, 0)

	assert.Equal(t, 0, summary.TotalPNRs)
	assert.Equal(t, 0.0, summary.AverageScore, "empty set reports zero, never NaN")
	assert.Equal(t, 0.0, summary.ContactPercentage)
	assert.Empty(t, summary.ByOffice)
}

func TestSummarizeCounts(t *testing.T) {
	pnrs := []*entity.PNR{
		reachablePNR("PNR1", "NBO001", "AMADEUS"),
		{ // no contacts at all
			ControlNumber: "PNR2", OfficeID: "NBO001", DeliverySystemCompany: "AMADEUS",
		},
		{ // email shape stuffed into a phone type: wrongly placed and wrong format
			ControlNumber: "PNR3", OfficeID: "MBA002", DeliverySystemCompany: "SABRE",
			Contacts: []entity.Contact{
				{ContactType: quality.TypeCTCM, ContactDetail: "lost@example.com"},
			},
		},
	}

	summary := Summarize(pnrs, query.All{}, 0)

	assert.Equal(t, 3, summary.TotalPNRs)
	assert.Equal(t, 1, summary.ReachablePNRs)
	assert.Equal(t, 2, summary.UnreachablePNRs)
	assert.Equal(t, 1, summary.MissingContactPNRs)
	assert.Equal(t, 1, summary.WrongFormatPNRs)
	assert.Equal(t, 1, summary.WronglyPlacedPNRs)
	assert.InDelta(t, 100.0*2/3, summary.ContactPercentage, 0.001)
}

func TestSummarizeAverageMatchesPerRecordScores(t *testing.T) {
	pnrs := []*entity.PNR{
		reachablePNR("PNR1", "NBO001", "AMADEUS"),
		{ControlNumber: "PNR2", Passengers: []entity.Passenger{{Surname: "DOE", FirstName: "J", FFNumber: "FF1", Meal: "VGML"}}},
		{ControlNumber: "PNR3"},
	}

	total := 0
	for _, pnr := range pnrs {
		total += pnr.QualityScore()
	}
	want := float64(total) / float64(len(pnrs))

	summary := Summarize(pnrs, query.All{}, 0)
	assert.Equal(t, want, summary.AverageScore, "bulk path must agree with per-record path")
}

func TestSummarizeAppliesFilter(t *testing.T) {
	pnrs := []*entity.PNR{
		reachablePNR("PNR1", "NBO001", "AMADEUS"),
		reachablePNR("PNR2", "MBA002", "SABRE"),
	}

	filter := query.FieldIn{Field: query.FieldOffice, Values: []string{"NBO001"}}
	summary := Summarize(pnrs, filter, 0)

	assert.Equal(t, 1, summary.TotalPNRs)
	require.Len(t, summary.ByOffice, 1)
	assert.Equal(t, "NBO001", summary.ByOffice[0].Key)
}

func TestSummarizeBreakdownOrdering(t *testing.T) {
	pnrs := []*entity.PNR{
		reachablePNR("PNR1", "NBO001", "AMADEUS"),
		reachablePNR("PNR2", "MBA002", "SABRE"),
		reachablePNR("PNR3", "MBA002", "SABRE"),
	}

	summary := Summarize(pnrs, query.All{}, 0)

	require.Len(t, summary.ByOffice, 2)
	assert.Equal(t, "MBA002", summary.ByOffice[0].Key, "largest group first")
	assert.Equal(t, 2, summary.ByOffice[0].Count)
	require.Len(t, summary.ByDeliverySystem, 2)
	assert.Equal(t, "SABRE", summary.ByDeliverySystem[0].Key)
}

func TestSummarizeScoreDistribution(t *testing.T) {
	pnrs := []*entity.PNR{
		{ControlNumber: "ZERO"}, // score 0
		{ControlNumber: "TWENTY", Passengers: []entity.Passenger{{Surname: "A", FirstName: "B", Meal: "VGML"}}}, // score 20
		reachablePNR("FORTY", "NBO001", "AMADEUS"),                                                              // score 40
	}

	summary := Summarize(pnrs, query.All{}, 0)

	require.Len(t, summary.ScoreDistribution, 5)
	assert.Equal(t, 2, summary.ScoreDistribution[0].Count, "scores 0 and 20 share the first bucket")
	assert.Equal(t, 1, summary.ScoreDistribution[1].Count, "score 40 lands in (20,40]")
	assert.Equal(t, 0, summary.ScoreDistribution[2].Count)
	assert.Equal(t, 0, summary.ScoreDistribution[0].Low)
	assert.Equal(t, 20, summary.ScoreDistribution[0].High)
}

func TestSummarizeTrend(t *testing.T) {
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)

	pnrs := []*entity.PNR{
		withDate(reachablePNR("PNR1", "NBO001", "AMADEUS"), today),
		withDate(reachablePNR("PNR2", "NBO001", "AMADEUS"), yesterday),
		withDate(reachablePNR("PNR3", "NBO001", "AMADEUS"), yesterday),
		withDate(reachablePNR("OLD", "NBO001", "AMADEUS"), lastWeek),
		reachablePNR("UNDATED", "NBO001", "AMADEUS"),
	}

	summary := Summarize(pnrs, query.All{}, 3)

	require.Len(t, summary.Trend, 3)
	assert.True(t, summary.Trend[0].Date.Before(summary.Trend[2].Date), "oldest first")
	assert.Equal(t, 0, summary.Trend[0].Count)
	assert.Equal(t, 2, summary.Trend[1].Count)
	assert.Equal(t, 1, summary.Trend[2].Count)
	assert.Equal(t, 40.0, summary.Trend[1].AverageScore)

	assert.Equal(t, 5, summary.TotalPNRs, "out-of-window and undated records still count in totals")
}

func TestBuildSummaryDecoratesOffices(t *testing.T) {
	pnrRepo := &fakePNRRepository{replaced: []*entity.PNR{
		reachablePNR("PNR1", "NBO001", "AMADEUS"),
	}}
	officeRepo := &fakeOfficeRepository{offices: []*entity.Office{
		{OfficeID: "NBO001", Name: "Nairobi HQ"},
	}}
	rb := NewReportBuilder(pnrRepo, officeRepo, logger.NewNop())

	summary, err := rb.BuildSummary(context.Background(), nil, 0)

	require.NoError(t, err)
	require.Len(t, summary.ByOffice, 1)
	assert.Equal(t, "NBO001", summary.ByOffice[0].Key)
	assert.Equal(t, "Nairobi HQ", summary.ByOffice[0].Label)
}

func withDate(pnr *entity.PNR, t time.Time) *entity.PNR {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	pnr.CreationDate = &d
	return pnr
}
