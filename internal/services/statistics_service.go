package services

import (
	"math"
	"sort"
	"time"

	"github.com/gitroast/gitroast/internal/models"
)

// weeksPerYear is the divisor for the weekly contribution average
const weeksPerYear = 52

// StatisticsService derives ProfileStats from repositories and
// contributions. All methods are pure: identical inputs always produce
// identical output for a given evaluation time.
type StatisticsService struct{}

func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// CalculateStats aggregates the repository list and contribution list into
// the profile summary. The evaluation time is passed in so results are
// reproducible.
func (s *StatisticsService) CalculateStats(repositories []models.Repository, contributions []models.Contribution, now time.Time) models.ProfileStats {
	stats := models.ProfileStats{
		TotalRepos:         len(repositories),
		TopLanguages:       make(map[string]int),
		Contributions:      contributions,
		ContributionStreak: s.CalculateStreak(contributions),
	}

	for _, repo := range repositories {
		stats.TotalStars += repo.Stars
		stats.TotalForks += repo.Forks
		if repo.Language != "" {
			stats.TopLanguages[repo.Language]++
		}
	}

	oneYearAgo := now.AddDate(0, 0, -365)
	for _, contribution := range contributions {
		stats.TotalContributions += contribution.Count
		if contribution.Date.After(oneYearAgo) {
			stats.ContributionsLastYear += contribution.Count
		}
	}

	stats.AverageContributionsPerWeek = int(math.Round(float64(stats.ContributionsLastYear) / weeksPerYear))

	return stats
}

// CalculateStreak returns the longest run of contributions with no gap
// exceeding one day between consecutive contribution dates.
//
// Dates are normalized to UTC calendar days before diffing, so several
// contributions within one day count once and late-night/early-morning
// pairs on consecutive days still chain.
func (s *StatisticsService) CalculateStreak(contributions []models.Contribution) int {
	if len(contributions) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(contributions))
	days := make([]time.Time, 0, len(contributions))
	for _, contribution := range contributions {
		day := contribution.Date.UTC().Truncate(24 * time.Hour)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	// Newest first, matching the order the events API hands them out
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	currentStreak := 1
	maxStreak := 1
	for i := 1; i < len(days); i++ {
		dayDifference := int(days[i-1].Sub(days[i]).Hours() / 24)
		if dayDifference <= 1 {
			currentStreak++
		} else {
			currentStreak = 1
		}
		if currentStreak > maxStreak {
			maxStreak = currentStreak
		}
	}

	return maxStreak
}
