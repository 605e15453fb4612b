package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"

	"github.com/gitroast/gitroast/internal/models"
	"github.com/gitroast/gitroast/pkg/logger"
)

// ProfileService runs the full roast pipeline: cache lookup, rate limit
// check, the two GitHub fetches, contribution processing, statistics,
// evaluation, and cache write-back.
type ProfileService struct {
	githubAPI           GitHubAPI
	contributionService *ContributionService
	statisticsService   *StatisticsService
	evaluationService   *EvaluationService
	cacheService        *CacheService
	rateLimiter         *RateLimiter
	analyticsService    *AnalyticsService

	now func() time.Time
}

func NewProfileService(
	githubAPI GitHubAPI,
	contributionService *ContributionService,
	statisticsService *StatisticsService,
	evaluationService *EvaluationService,
	cacheService *CacheService,
	rateLimiter *RateLimiter,
	analyticsService *AnalyticsService,
) *ProfileService {
	return &ProfileService{
		githubAPI:           githubAPI,
		contributionService: contributionService,
		statisticsService:   statisticsService,
		evaluationService:   evaluationService,
		cacheService:        cacheService,
		rateLimiter:         rateLimiter,
		analyticsService:    analyticsService,
		now:                 time.Now,
	}
}

// FetchProfile returns the roasted profile for a username, serving from
// cache when a fresh entry exists. A fetched profile is cached and replaced
// wholesale on the next miss; it is never partially mutated.
func (s *ProfileService) FetchProfile(ctx context.Context, username string) (*models.GitHubProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	if profile, ok := s.cacheService.Get(username); ok {
		s.analyticsService.Track("profile", "cache_hit", username, 0)
		return profile, nil
	}

	// One unit of the internal budget covers both upstream calls of a fetch
	if err := s.rateLimiter.CheckLimit(); err != nil {
		s.analyticsService.Track("profile", "rate_limited", username, 0)
		return nil, err
	}

	repositories, events, err := s.fetchRemote(ctx, username)
	if err != nil {
		s.analyticsService.Track("profile", "fetch_failed", username, 0)
		return nil, err
	}

	now := s.now()
	contributions := s.contributionService.ProcessEvents(events)
	stats := s.statisticsService.CalculateStats(repositories, contributions, now)
	evaluation := s.evaluationService.Evaluate(repositories, stats, now)

	profile := &models.GitHubProfile{
		Username:          username,
		Repositories:      repositories,
		Stats:             stats,
		EvaluationResults: evaluation,
	}

	if err := s.cacheService.Set(username, profile); err != nil {
		logger.WithError(err).WithField("username", username).Warnf("failed to cache profile")
	}

	s.analyticsService.Track("profile", "fetched", username, evaluation.OverallScore)
	logger.WithFields(logrus.Fields{
		"username":      username,
		"repositories":  len(repositories),
		"contributions": len(contributions),
		"overall_score": evaluation.OverallScore,
	}).Info("roasted github profile")

	return profile, nil
}

// fetchRemote issues the repository and event requests concurrently. The
// two calls are independent; both results are awaited before returning.
func (s *ProfileService) fetchRemote(ctx context.Context, username string) ([]models.Repository, []*github.Event, error) {
	var (
		wg           sync.WaitGroup
		repositories []models.Repository
		events       []*github.Event
		reposErr     error
		eventsErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		repositories, reposErr = s.githubAPI.FetchRepositories(ctx, username)
	}()
	go func() {
		defer wg.Done()
		events, eventsErr = s.githubAPI.FetchEvents(ctx, username)
	}()
	wg.Wait()

	// Not-found wins over a generic upstream failure on the other call
	for _, err := range []error{reposErr, eventsErr} {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, err
		}
	}
	if reposErr != nil {
		return nil, nil, reposErr
	}
	if eventsErr != nil {
		return nil, nil, eventsErr
	}

	return repositories, events, nil
}
