package session

import "math"

// Tier classifies a percentage score for feedback coloring.
type Tier string

const (
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Result holds the data displayed on the results screen.
type Result struct {
	Score         int
	Total         int
	Answered      int
	Percentage    float64
	Tier          Tier
	TimeUsed      int // seconds
	AutoSubmitted bool
}

// Score counts questions whose selection equals the expected answer.
// Unanswered questions never count.
func Score(qs []Question) int {
	n := 0
	for i := range qs {
		if qs[i].Correct() {
			n++
		}
	}
	return n
}

// Percentage returns 100*score/total rounded to one decimal, or 0 for an
// empty total.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(1000*float64(score)/float64(total)) / 10
}

// Classify maps a percentage onto its tier: >=80 high, >=60 mid, else low.
func Classify(pct float64) Tier {
	switch {
	case pct >= 80:
		return TierHigh
	case pct >= 60:
		return TierMid
	default:
		return TierLow
	}
}

// BuildResult summarises a submitted session.
func BuildResult(s *Session) *Result {
	total := len(s.Questions)
	pct := Percentage(s.Score, total)
	return &Result{
		Score:         s.Score,
		Total:         total,
		Answered:      s.Progress(),
		Percentage:    pct,
		Tier:          Classify(pct),
		TimeUsed:      s.Elapsed(),
		AutoSubmitted: s.AutoSubmitted,
	}
}
