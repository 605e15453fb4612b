package models

// ProfileStats is the aggregate derived from a repository list and a
// contribution list. It is recomputed wholesale on every fetch.
type ProfileStats struct {
	TotalStars                  int            `json:"totalStars"`
	TotalForks                  int            `json:"totalForks"`
	TotalRepos                  int            `json:"totalRepos"`
	TopLanguages                map[string]int `json:"topLanguages"`
	ContributionsLastYear       int            `json:"contributionsLastYear"`
	ContributionStreak          int            `json:"contributionStreak"`
	Contributions               []Contribution `json:"contributions"`
	TotalContributions          int            `json:"totalContributions"`
	AverageContributionsPerWeek int            `json:"averageContributionsPerWeek"`
}

// GitHubProfile is the unit cached and served to clients
type GitHubProfile struct {
	Username          string           `json:"username"`
	Repositories      []Repository     `json:"repositories"`
	Stats             ProfileStats     `json:"stats"`
	EvaluationResults EvaluationResult `json:"evaluationResults"`
}
