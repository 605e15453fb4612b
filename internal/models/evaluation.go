package models

// Category names, in the fixed order they appear in an EvaluationResult
const (
	CategoryRepositoryQuality    = "Repository Quality"
	CategoryCodeConsistency      = "Code Consistency"
	CategoryCommunityEngagement  = "Community Engagement"
	CategoryProjectMaintenance   = "Project Maintenance"
	CategoryContributionActivity = "Contribution Activity"
)

// RoastCategory is one scored dimension of the roast
type RoastCategory struct {
	Name           string `json:"name"`
	Score          int    `json:"score"`
	Comment        string `json:"comment"`
	Recommendation string `json:"recommendation,omitempty"`
}

// EvaluationResult combines the five category scores into an overall roast
type EvaluationResult struct {
	OverallScore     int             `json:"overallScore"`
	HumorousComments []string        `json:"humorousComments"`
	Recommendations  []string        `json:"recommendations"`
	Categories       []RoastCategory `json:"categories"`
}
