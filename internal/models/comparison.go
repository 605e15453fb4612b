package models

// ComparisonDeltas holds first-minus-second differences for the headline numbers
type ComparisonDeltas struct {
	Stars        int `json:"stars"`
	Forks        int `json:"forks"`
	OverallScore int `json:"overallScore"`
	Streak       int `json:"streak"`
}

// ProfileComparison pairs two roasted profiles for side-by-side display
type ProfileComparison struct {
	First  *GitHubProfile   `json:"first"`
	Second *GitHubProfile   `json:"second"`
	Deltas ComparisonDeltas `json:"deltas"`
}

// NewProfileComparison computes the deltas between two profiles
func NewProfileComparison(first, second *GitHubProfile) *ProfileComparison {
	return &ProfileComparison{
		First:  first,
		Second: second,
		Deltas: ComparisonDeltas{
			Stars:        first.Stats.TotalStars - second.Stats.TotalStars,
			Forks:        first.Stats.TotalForks - second.Stats.TotalForks,
			OverallScore: first.EvaluationResults.OverallScore - second.EvaluationResults.OverallScore,
			Streak:       first.Stats.ContributionStreak - second.Stats.ContributionStreak,
		},
	}
}
