package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/domain/query"
	"pnrquality-service/internal/domain/repository"
	"pnrquality-service/pkg/logger"
	"pnrquality-service/pkg/quality"
)

// ReportBuilder rolls PNR quality up across offices, delivery systems and
// time for reporting. All figures come out of one pass over the filtered
// set; nothing is materialized beyond the accumulators.
type ReportBuilder struct {
	pnrRepo    repository.PNRRepository
	officeRepo repository.OfficeRepository
	logger     logger.Logger
}

// NewReportBuilder creates a new report builder
func NewReportBuilder(
	pnrRepo repository.PNRRepository,
	officeRepo repository.OfficeRepository,
	logger logger.Logger,
) *ReportBuilder {
	return &ReportBuilder{
		pnrRepo:    pnrRepo,
		officeRepo: officeRepo,
		logger:     logger,
	}
}

type dimensionAccumulator struct {
	count int
	sum   int
}

// BuildSummary computes the aggregate quality picture for every PNR
// matching the filter. trendDays selects the day-trend window; 0 disables
// the trend.
func (rb *ReportBuilder) BuildSummary(ctx context.Context, filter query.Spec, trendDays int) (*entity.QualitySummary, error) {
	pnrs, err := rb.pnrRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if filter == nil {
		filter = query.All{}
	}

	summary := Summarize(pnrs, filter, trendDays)

	rb.decorateOffices(ctx, summary)

	rb.logger.Debug("Built quality summary",
		"total", summary.TotalPNRs,
		"reachable", summary.ReachablePNRs,
		"avgScore", summary.AverageScore,
	)
	return summary, nil
}

// Summarize is the bulk scoring and aggregation path over an in-memory
// set. Split out from BuildSummary so collaborators holding their own
// records can aggregate without a storage round trip.
func Summarize(pnrs []*entity.PNR, filter query.Spec, trendDays int) *entity.QualitySummary {
	summary := &entity.QualitySummary{}

	var scores quality.ScoreSet
	byOffice := make(map[string]*dimensionAccumulator)
	byDeliverySystem := make(map[string]*dimensionAccumulator)

	today := truncateToDay(time.Now())
	var trendStart time.Time
	trend := make(map[time.Time]*dimensionAccumulator)
	if trendDays > 0 {
		trendStart = today.AddDate(0, 0, -(trendDays - 1))
	}

	for _, pnr := range pnrs {
		if !filter.Matches(pnr) {
			continue
		}

		// Same primitive as PNR.QualityScore; the per-record and bulk
		// paths must agree exactly.
		score := pnr.QualityScore()
		scores.Add(score)

		summary.TotalPNRs++
		if pnr.IsReachable() {
			summary.ReachablePNRs++
		}
		if len(pnr.Contacts) == 0 {
			summary.MissingContactPNRs++
		}
		if pnr.HasWrongFormatContact() {
			summary.WrongFormatPNRs++
		}
		if pnr.HasWronglyPlacedContact() {
			summary.WronglyPlacedPNRs++
		}

		accumulate(byOffice, pnr.OfficeID, score)
		accumulate(byDeliverySystem, pnr.DeliverySystemCompany, score)

		if trendDays > 0 && pnr.CreationDate != nil {
			day := truncateToDay(*pnr.CreationDate)
			if !day.Before(trendStart) && !day.After(today) {
				accumulate(trend, day, score)
			}
		}
	}

	summary.UnreachablePNRs = summary.TotalPNRs - summary.ReachablePNRs
	summary.AverageScore = scores.Average()
	summary.ContactPercentage = safePercentage(summary.TotalPNRs-summary.MissingContactPNRs, summary.TotalPNRs)
	summary.ByOffice = sortedStats(byOffice)
	summary.ByDeliverySystem = sortedStats(byDeliverySystem)
	summary.ScoreDistribution = bucketStats(scores.Buckets())

	if trendDays > 0 {
		summary.Trend = trendSeries(trend, trendStart, trendDays)
	}

	return summary
}

func accumulate[K comparable](acc map[K]*dimensionAccumulator, key K, score int) {
	a, ok := acc[key]
	if !ok {
		a = &dimensionAccumulator{}
		acc[key] = a
	}
	a.count++
	a.sum += score
}

// sortedStats orders groups by count descending, key ascending on ties.
func sortedStats(acc map[string]*dimensionAccumulator) []entity.DimensionStat {
	stats := make([]entity.DimensionStat, 0, len(acc))
	for key, a := range acc {
		avg := 0.0
		if a.count > 0 {
			avg = float64(a.sum) / float64(a.count)
		}
		stats = append(stats, entity.DimensionStat{
			Key:          key,
			Label:        key,
			Count:        a.count,
			AverageScore: avg,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Key < stats[j].Key
	})
	return stats
}

func bucketStats(buckets [quality.BucketCount]int) []entity.ScoreBucket {
	out := make([]entity.ScoreBucket, 0, quality.BucketCount)
	for i, count := range buckets {
		out = append(out, entity.ScoreBucket{
			Low:   i * 20,
			High:  (i + 1) * 20,
			Count: count,
		})
	}
	return out
}

// trendSeries lays the day accumulators out chronologically, filling
// missing days with empty points.
func trendSeries(trend map[time.Time]*dimensionAccumulator, start time.Time, days int) []entity.TrendPoint {
	points := make([]entity.TrendPoint, 0, days)
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		point := entity.TrendPoint{Date: day}
		if a, ok := trend[day]; ok {
			point.Count = a.count
			point.AverageScore = float64(a.sum) / float64(a.count)
		}
		points = append(points, point)
	}
	return points
}

func (rb *ReportBuilder) decorateOffices(ctx context.Context, summary *entity.QualitySummary) {
	if rb.officeRepo == nil || len(summary.ByOffice) == 0 {
		return
	}
	offices, err := rb.officeRepo.List(ctx)
	if err != nil {
		rb.logger.Warn("Failed to load office reference data", "error", err)
		return
	}
	names := make(map[string]string, len(offices))
	for _, office := range offices {
		names[office.OfficeID] = office.Name
	}
	for i := range summary.ByOffice {
		if name, ok := names[summary.ByOffice[i].Key]; ok {
			summary.ByOffice[i].Label = name
		}
	}
}

// safePercentage guards the zero denominator and clamps into [0, 100].
func safePercentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return quality.ClampPercent(float64(part) / float64(total) * 100)
}

// truncateToDay normalizes to a UTC calendar date so that dates parsed
// from imports (UTC) and the server clock (local) agree as map keys.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
