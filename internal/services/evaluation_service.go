package services

import (
	"math"
	"strings"
	"time"

	"github.com/gitroast/gitroast/internal/models"
)

// EvaluationService applies the fixed roast scoring rules. Every category is
// a deterministic decision table over the repositories and stats; there is
// no randomness anywhere, so identical inputs roast identically.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate produces the five fixed categories in order and combines their
// scores by arithmetic mean into the overall score.
func (s *EvaluationService) Evaluate(repositories []models.Repository, stats models.ProfileStats, now time.Time) models.EvaluationResult {
	categories := []models.RoastCategory{
		s.evaluateRepoQuality(repositories),
		s.evaluateCodeConsistency(stats),
		s.evaluateCommunityEngagement(stats),
		s.evaluateProjectMaintenance(repositories, now),
		s.evaluateContributions(stats),
	}

	totalScore := 0
	humorousComments := make([]string, 0, len(categories))
	recommendations := make([]string, 0, len(categories))

	for _, category := range categories {
		totalScore += category.Score
		humorousComments = append(humorousComments, category.Comment)
		if category.Recommendation != "" {
			recommendations = append(recommendations, category.Recommendation)
		}
	}

	return models.EvaluationResult{
		OverallScore:     int(math.Round(float64(totalScore) / float64(len(categories)))),
		HumorousComments: humorousComments,
		Recommendations:  recommendations,
		Categories:       categories,
	}
}

func (s *EvaluationService) evaluateRepoQuality(repositories []models.Repository) models.RoastCategory {
	hasReadme := false
	hasTests := false
	for _, repo := range repositories {
		name := strings.ToLower(repo.Name)
		description := strings.ToLower(repo.DescriptionOrEmpty())
		if strings.Contains(name, "readme") || strings.Contains(description, "readme") {
			hasReadme = true
		}
		if strings.Contains(name, "test") || strings.Contains(description, "test") {
			hasTests = true
		}
	}

	score := 40
	comment := "Documentation? Tests? Never heard of them! Living life on the edge! 🎢"
	recommendation := "Add some READMEs and tests - your future self will thank you!"

	switch {
	case hasReadme && hasTests:
		score = 85
		comment = "Look at you, with your tests and documentation! Someone's been reading 'Clean Code'! 📖"
		recommendation = ""
	case hasReadme:
		score = 65
		comment = "Great README, but where are the tests? It's like a car with no airbags! 🚗"
		recommendation = "Adding tests would make your projects more reliable!"
	case hasTests:
		score = 60
		comment = "Tests but no README? It's like having a book with no cover! 📚"
		recommendation = "Consider adding READMEs to help others understand your projects!"
	}

	return models.RoastCategory{
		Name:           models.CategoryRepositoryQuality,
		Score:          score,
		Comment:        comment,
		Recommendation: recommendation,
	}
}

func (s *EvaluationService) evaluateCodeConsistency(stats models.ProfileStats) models.RoastCategory {
	languageCount := len(stats.TopLanguages)

	var score int
	var comment, recommendation string

	switch {
	case languageCount == 0:
		score = 0
		comment = "Your profile is as empty as my coffee cup on Monday morning! ☕"
		recommendation = "Start by pushing some code - any code!"
	case languageCount == 1:
		score = 60
		comment = "Monogamous with your programming language, I see! 💍"
		recommendation = "Try exploring other languages - polyglot programming is the future!"
	case languageCount > 8:
		score = 75
		comment = "Jack of all trades, master of... some? 🃏"
		recommendation = "Consider focusing on a few languages to build deeper expertise."
	default:
		score = 85
		comment = "Nice language diversity - you're like the United Nations of code! 🌎"
	}

	return models.RoastCategory{
		Name:           models.CategoryCodeConsistency,
		Score:          score,
		Comment:        comment,
		Recommendation: recommendation,
	}
}

func (s *EvaluationService) evaluateCommunityEngagement(stats models.ProfileStats) models.RoastCategory {
	var score int
	var comment, recommendation string

	switch {
	case stats.TotalStars == 0 && stats.TotalForks == 0:
		score = 30
		comment = "Your repos are like my high school dance - nobody's joining in! 💃"
		recommendation = "Try contributing to popular projects to gain visibility!"
	case stats.TotalStars+stats.TotalForks > 100:
		score = 90
		comment = "Look at you, Mr./Ms. Popular! Your repos are getting more action than a cat video! 🐱"
	default:
		score = 60
		comment = "Your community engagement is like my gym membership - showing potential but needs more commitment! 🏋️‍♂️"
		recommendation = "Consider creating more shareable content and engaging with other projects!"
	}

	return models.RoastCategory{
		Name:           models.CategoryCommunityEngagement,
		Score:          score,
		Comment:        comment,
		Recommendation: recommendation,
	}
}

func (s *EvaluationService) evaluateProjectMaintenance(repositories []models.Repository, now time.Time) models.RoastCategory {
	// A repository counts as maintained when it saw an update within the
	// last three months (90 days)
	cutoff := now.AddDate(0, 0, -90)
	recentActivity := 0
	for _, repo := range repositories {
		if repo.LastUpdated.After(cutoff) {
			recentActivity++
		}
	}

	var score int
	var comment, recommendation string

	switch {
	case recentActivity == 0:
		score = 30
		comment = "Your last commit is so old, it probably runs on Windows 95! 🖥️"
		recommendation = "Time to dust off that keyboard and get coding!"
	case recentActivity > 5:
		score = 90
		comment = "You're coding like there's no tomorrow! Save some commits for the rest of us! ⚡"
	default:
		score = 60
		comment = "Your commit history is like my diet - inconsistent but trying! 🥗"
		recommendation = "Try to maintain a more regular coding schedule!"
	}

	return models.RoastCategory{
		Name:           models.CategoryProjectMaintenance,
		Score:          score,
		Comment:        comment,
		Recommendation: recommendation,
	}
}

func (s *EvaluationService) evaluateContributions(stats models.ProfileStats) models.RoastCategory {
	var score int
	var comment, recommendation string

	switch {
	case stats.ContributionStreak > 30:
		score = 95
		comment = "Your contribution streak is longer than my Netflix binge sessions! 🔥"
	case stats.ContributionStreak > 14:
		score = 85
		comment = "Two weeks of daily commits? Someone's trying to impress their future employer! 👔"
	case stats.ContributionStreak > 7:
		score = 75
		comment = "A week-long streak! Your keyboard must be feeling loved! ⌨️"
	default:
		score = 60
		comment = "Your contribution graph looks like my gym attendance - sporadic at best! 💪"
		recommendation = "Try to code a little bit every day - consistency is key!"
	}

	if stats.AverageContributionsPerWeek > 20 {
		comment += "\nYou're pushing code faster than I push my luck! 🎲"
	}

	return models.RoastCategory{
		Name:           models.CategoryContributionActivity,
		Score:          score,
		Comment:        comment,
		Recommendation: recommendation,
	}
}
