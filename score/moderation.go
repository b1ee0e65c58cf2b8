package score

import (
	"strings"

	"github.com/neighborly/neighborly-api/schema"
)

const (
	CriticalBlockThreshold = 8
	HighBlockThreshold     = 12
	ReportBlockThreshold   = 10

	CriticalBlockReason = "Critical safety violation reported"
	HighBlockReason     = "Multiple high-severity reports"
	ReportBlockReason   = "Multiple reports received"
)

var severityWeights = map[schema.Severity]int{
	schema.SeverityLow:      1,
	schema.SeverityMedium:   2,
	schema.SeverityHigh:     4,
	schema.SeverityCritical: 8,
}

func SeverityWeight(s schema.Severity) int {
	return severityWeights[s]
}

// BlockDecision is the outcome of evaluating the pending reports against a user
type BlockDecision struct {
	Score  int
	Block  bool
	Reason string
}

// Resolution is the text stamped on reports closed by an automatic block
func (d BlockDecision) Resolution() string {
	return "User auto-blocked due to " + strings.ToLower(d.Reason)
}

// EvaluateReports sums the weights of pending reports and applies the block rules in order
func EvaluateReports(reports []schema.Report) BlockDecision {
	d := BlockDecision{}
	hasCritical := false
	for _, r := range reports {
		if r.Status != schema.ReportPending {
			continue
		}
		d.Score += SeverityWeight(r.Severity)
		if r.Severity == schema.SeverityCritical {
			hasCritical = true
		}
	}

	switch {
	case d.Score >= CriticalBlockThreshold && hasCritical:
		d.Block, d.Reason = true, CriticalBlockReason
	case d.Score >= HighBlockThreshold:
		d.Block, d.Reason = true, HighBlockReason
	case d.Score >= ReportBlockThreshold:
		d.Block, d.Reason = true, ReportBlockReason
	}

	return d
}

func socialProofBonus(ratingCount int) float64 {
	switch {
	case ratingCount >= 10:
		return 5
	case ratingCount >= 5:
		return 3
	case ratingCount >= 1:
		return 1
	}
	return 0
}

// TrustScore returns a 0 to 100 score from the rating aggregate of a user
func TrustScore(averageRating float64, ratingCount int, hasPendingReports bool) float64 {
	s := averageRating*20 + socialProofBonus(ratingCount)
	if hasPendingReports {
		s -= 15
	}
	return clamp(s, 0, 100)
}
