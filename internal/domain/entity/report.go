package entity

import "time"

// DimensionStat is one group in a per-dimension breakdown.
type DimensionStat struct {
	Key          string
	Label        string
	Count        int
	AverageScore float64
}

// ScoreBucket is one bin of the score distribution.
type ScoreBucket struct {
	Low   int // exclusive, except the first bin which also holds score 0
	High  int // inclusive
	Count int
}

// TrendPoint is one calendar day of the quality trend.
type TrendPoint struct {
	Date         time.Time
	Count        int
	AverageScore float64
}

// QualitySummary is the aggregate picture over one filtered PNR set.
type QualitySummary struct {
	TotalPNRs          int
	ReachablePNRs      int
	UnreachablePNRs    int
	MissingContactPNRs int
	WrongFormatPNRs    int
	WronglyPlacedPNRs  int
	AverageScore       float64
	ContactPercentage  float64
	ByOffice           []DimensionStat
	ByDeliverySystem   []DimensionStat
	ScoreDistribution  []ScoreBucket
	Trend              []TrendPoint
}
