package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitroast/gitroast/internal/models"
)

func TestEvaluateCategoryOrderAndOverallScore(t *testing.T) {
	service := NewEvaluationService()
	now := day(2024, 6, 1, 12, 0)

	repositories := []models.Repository{
		{Name: "my-readme-site", Stars: 50, Forks: 60, Language: "Go", LastUpdated: day(2024, 5, 20, 0, 0)},
		{Name: "test-helpers", Stars: 1, Forks: 0, Language: "Rust", LastUpdated: day(2024, 5, 1, 0, 0)},
	}
	stats := models.ProfileStats{
		TotalStars:                  51,
		TotalForks:                  60,
		TopLanguages:                map[string]int{"Go": 1, "Rust": 1},
		ContributionStreak:          16,
		AverageContributionsPerWeek: 3,
	}

	result := service.Evaluate(repositories, stats, now)

	require.Len(t, result.Categories, 5)
	assert.Equal(t, models.CategoryRepositoryQuality, result.Categories[0].Name)
	assert.Equal(t, models.CategoryCodeConsistency, result.Categories[1].Name)
	assert.Equal(t, models.CategoryCommunityEngagement, result.Categories[2].Name)
	assert.Equal(t, models.CategoryProjectMaintenance, result.Categories[3].Name)
	assert.Equal(t, models.CategoryContributionActivity, result.Categories[4].Name)

	// readme + tests, 2 languages, stars+forks > 100, 2 recent repos, streak > 14
	assert.Equal(t, 85, result.Categories[0].Score)
	assert.Equal(t, 85, result.Categories[1].Score)
	assert.Equal(t, 90, result.Categories[2].Score)
	assert.Equal(t, 60, result.Categories[3].Score)
	assert.Equal(t, 85, result.Categories[4].Score)

	sum := 0
	for _, category := range result.Categories {
		assert.GreaterOrEqual(t, category.Score, 0)
		assert.LessOrEqual(t, category.Score, 100)
		sum += category.Score
	}
	expectedOverall := int(math.Round(float64(sum) / 5))
	assert.Equal(t, expectedOverall, result.OverallScore)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)

	// One comment per category, only non-empty recommendations collected
	assert.Len(t, result.HumorousComments, 5)
	for i, category := range result.Categories {
		assert.Equal(t, category.Comment, result.HumorousComments[i])
	}
	for _, recommendation := range result.Recommendations {
		assert.NotEmpty(t, recommendation)
	}
}

func TestEvaluateRepoQualityBranches(t *testing.T) {
	service := NewEvaluationService()

	readmeRepo := models.Repository{Name: "readme-generator"}
	testRepo := models.Repository{Name: "unit-tests"}
	plainRepo := models.Repository{Name: "dotfiles"}

	testCases := []struct {
		name          string
		repositories  []models.Repository
		expectedScore int
	}{
		{"Readme and tests", []models.Repository{readmeRepo, testRepo}, 85},
		{"Readme only", []models.Repository{readmeRepo, plainRepo}, 65},
		{"Tests only", []models.Repository{testRepo, plainRepo}, 60},
		{"Neither", []models.Repository{plainRepo}, 40},
		{"Match via description", []models.Repository{func() models.Repository {
			d := "Has a great README"
			return models.Repository{Name: "site", Description: &d}
		}()}, 65},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category := service.evaluateRepoQuality(tc.repositories)
			assert.Equal(t, tc.expectedScore, category.Score)
			assert.NotEmpty(t, category.Comment)
			if tc.expectedScore == 85 {
				assert.Empty(t, category.Recommendation)
			} else {
				assert.NotEmpty(t, category.Recommendation)
			}
		})
	}
}

func TestEvaluateCodeConsistencyBranches(t *testing.T) {
	service := NewEvaluationService()

	languages := func(names ...string) map[string]int {
		m := make(map[string]int)
		for _, name := range names {
			m[name]++
		}
		return m
	}

	testCases := []struct {
		name          string
		topLanguages  map[string]int
		expectedScore int
	}{
		{"No languages", languages(), 0},
		{"One language", languages("Go"), 60},
		{"Two languages", languages("Go", "Go", "Rust"), 85},
		{"Eight languages", languages("a", "b", "c", "d", "e", "f", "g", "h"), 85},
		{"Nine languages", languages("a", "b", "c", "d", "e", "f", "g", "h", "i"), 75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category := service.evaluateCodeConsistency(models.ProfileStats{TopLanguages: tc.topLanguages})
			assert.Equal(t, tc.expectedScore, category.Score)
		})
	}
}

func TestEvaluateCommunityEngagementBranches(t *testing.T) {
	service := NewEvaluationService()

	testCases := []struct {
		name            string
		stars           int
		forks           int
		expectedScore   int
		commentContains string
	}{
		{"No engagement", 0, 0, 30, "nobody's joining in"},
		{"Popular", 80, 30, 90, "Popular"},
		{"Exactly one hundred", 60, 40, 60, "gym membership"},
		{"Middle ground", 3, 2, 60, "gym membership"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category := service.evaluateCommunityEngagement(models.ProfileStats{
				TotalStars: tc.stars,
				TotalForks: tc.forks,
			})
			assert.Equal(t, tc.expectedScore, category.Score)
			assert.Contains(t, category.Comment, tc.commentContains)
		})
	}
}

func TestEvaluateProjectMaintenanceBranches(t *testing.T) {
	service := NewEvaluationService()
	now := day(2024, 6, 1, 12, 0)

	recent := models.Repository{Name: "r", LastUpdated: now.AddDate(0, 0, -10)}
	stale := models.Repository{Name: "s", LastUpdated: now.AddDate(0, 0, -200)}

	testCases := []struct {
		name          string
		repositories  []models.Repository
		expectedScore int
	}{
		{"Nothing recent", []models.Repository{stale, stale}, 30},
		{"A few recent", []models.Repository{recent, recent, stale}, 60},
		{"Very active", []models.Repository{recent, recent, recent, recent, recent, recent}, 90},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category := service.evaluateProjectMaintenance(tc.repositories, now)
			assert.Equal(t, tc.expectedScore, category.Score)
		})
	}
}

func TestEvaluateContributionsBranches(t *testing.T) {
	service := NewEvaluationService()

	testCases := []struct {
		name          string
		streak        int
		weeklyAverage int
		expectedScore int
		wantSuffix    bool
	}{
		{"Long streak", 31, 5, 95, false},
		{"Two week streak", 15, 5, 85, false},
		{"Week streak", 8, 5, 75, false},
		{"Sporadic", 2, 5, 60, false},
		{"Heavy weekly volume adds a suffix line", 2, 21, 60, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category := service.evaluateContributions(models.ProfileStats{
				ContributionStreak:          tc.streak,
				AverageContributionsPerWeek: tc.weeklyAverage,
			})
			assert.Equal(t, tc.expectedScore, category.Score)
			assert.Equal(t, tc.wantSuffix, strings.Contains(category.Comment, "push my luck"))
		})
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	service := NewEvaluationService()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	repositories := []models.Repository{
		{Name: "readme-kit", Stars: 4, Forks: 1, Language: "Go", LastUpdated: day(2024, 5, 1, 0, 0)},
	}
	stats := models.ProfileStats{
		TotalStars:         4,
		TotalForks:         1,
		TopLanguages:       map[string]int{"Go": 1},
		ContributionStreak: 3,
	}

	first := service.Evaluate(repositories, stats, now)
	second := service.Evaluate(repositories, stats, now)

	assert.Equal(t, first, second)
}
