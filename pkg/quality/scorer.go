package quality

// Score weights. Contact reachability dominates; the three passenger
// completeness signals share the rest evenly.
const (
	WeightValidContact  = 40
	WeightFrequentFlyer = 20
	WeightMeal          = 20
	WeightSeat          = 20

	// Legacy flat mode weight, five presence checks at 20 each
	WeightFlat = 20

	MaxScore = 100
)

// Score computes the composite quality score for one PNR from its four
// all-or-nothing signals. Result is clamped to [0, 100].
func Score(hasValidContact, hasFrequentFlyer, hasMeal, hasSeat bool) int {
	score := 0
	if hasValidContact {
		score += WeightValidContact
	}
	if hasFrequentFlyer {
		score += WeightFrequentFlyer
	}
	if hasMeal {
		score += WeightMeal
	}
	if hasSeat {
		score += WeightSeat
	}
	return Clamp(score)
}

// ScoreFlat is the legacy booking-level variant: five flat presence checks
// at 20 points each, no validity requirement. Kept as a distinct mode for
// datasets predating the passenger/contact split.
func ScoreFlat(phone, email, ffNumber, meal, seat string) int {
	score := 0
	for _, field := range []string{phone, email, ffNumber, meal, seat} {
		if field != "" {
			score += WeightFlat
		}
	}
	return Clamp(score)
}

// Clamp bounds a score into [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ClampPercent bounds a percentage into [0, 100].
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BucketCount is the number of equal-width score distribution bins.
const BucketCount = 5

// BucketIndex maps a score to its distribution bin: (0,20] (20,40] (40,60]
// (60,80] (80,100], with 0 falling into the first bin.
func BucketIndex(score int) int {
	if score <= 20 {
		return 0
	}
	idx := (score - 1) / 20
	if idx >= BucketCount {
		idx = BucketCount - 1
	}
	return idx
}

// ScoreSet is the bulk scoring path: a streaming accumulator over many PNR
// scores. It must agree exactly with summing per-PNR Score results, so it
// only ever consumes values produced by Score.
type ScoreSet struct {
	count   int
	sum     int
	buckets [BucketCount]int
}

// Add records one PNR score.
func (s *ScoreSet) Add(score int) {
	score = Clamp(score)
	s.count++
	s.sum += score
	s.buckets[BucketIndex(score)]++
}

// Count returns the number of scores recorded.
func (s *ScoreSet) Count() int { return s.count }

// Sum returns the total of all recorded scores.
func (s *ScoreSet) Sum() int { return s.sum }

// Average returns the mean score, 0 for an empty set.
func (s *ScoreSet) Average() float64 {
	if s.count == 0 {
		return 0
	}
	return float64(s.sum) / float64(s.count)
}

// Buckets returns the five-bin distribution counts, lowest bin first.
func (s *ScoreSet) Buckets() [BucketCount]int { return s.buckets }
