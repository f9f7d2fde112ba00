package scoring

import "github.com/dotcommander/passaudit/internal/types"

// StrengthScore represents the overall strength assessment for a password
type StrengthScore struct {
	Score   int           `json:"score"`   // passed checks
	Total   int           `json:"total"`   // registered checks
	Label   string        `json:"label"`   // very-weak .. excellent
	Entropy float64       `json:"entropy"` // estimated bits
	Strong  bool          `json:"strong"`  // score >= 75% of total
	Details []CheckMetric `json:"details"` // Detailed breakdown
}

// CheckMetric represents a single check outcome
type CheckMetric struct {
	ID       string `json:"id"`
	Name     string `json:"name"`     // Human-readable name
	Passed   bool   `json:"passed"`   // Whether this check passed
	Severity string `json:"severity"` // error, warning
	Source   string `json:"source"`   // rule source tag
	Note     string `json:"note"`     // Optional note/reason
}

// LabelFromScore determines the strength label from score and entropy.
func LabelFromScore(score int, entropy float64) string {
	switch {
	case score >= 10 && entropy >= 75:
		return types.LabelExcellent
	case score >= 8 && entropy >= 60:
		return types.LabelVeryStrong
	case score >= 6 && entropy >= 45:
		return types.LabelStrong
	case score >= 4 && entropy >= 30:
		return types.LabelModerate
	case score >= 2:
		return types.LabelWeak
	default:
		return types.LabelVeryWeak
	}
}

// NewStrengthScore creates a StrengthScore from check metrics and entropy.
func NewStrengthScore(details []CheckMetric, entropy float64) StrengthScore {
	score := 0
	for _, d := range details {
		if d.Passed {
			score++
		}
	}
	total := len(details)
	return StrengthScore{
		Score:   score,
		Total:   total,
		Label:   LabelFromScore(score, entropy),
		Entropy: entropy,
		Strong:  total > 0 && float64(score) >= float64(total)*0.75,
		Details: details,
	}
}

// FailedChecks returns the IDs of checks that did not pass.
func (s StrengthScore) FailedChecks() []string {
	var failed []string
	for _, d := range s.Details {
		if !d.Passed {
			failed = append(failed, d.ID)
		}
	}
	return failed
}
