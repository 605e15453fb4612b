package services

import (
	"github.com/google/go-github/v57/github"

	"github.com/gitroast/gitroast/internal/models"
)

// eventTypes maps the recognized raw event types onto contribution types.
// Everything else is dropped silently.
var eventTypes = map[string]models.ContributionType{
	"PushEvent":        models.ContributionTypePush,
	"PullRequestEvent": models.ContributionTypePullRequest,
	"IssuesEvent":      models.ContributionTypeIssue,
	"CreateEvent":      models.ContributionTypeCreate,
}

// ContributionService turns raw public events into typed contributions
type ContributionService struct{}

func NewContributionService() *ContributionService {
	return &ContributionService{}
}

// ProcessEvents filters events to the recognized types and normalizes them.
// Push events count the commits carried in their payload, defaulting to 1
// when the payload carries none; every other type counts as 1.
func (s *ContributionService) ProcessEvents(events []*github.Event) []models.Contribution {
	contributions := make([]models.Contribution, 0, len(events))

	for _, event := range events {
		contributionType, ok := eventTypes[event.GetType()]
		if !ok {
			continue
		}

		contributions = append(contributions, models.Contribution{
			Type:  contributionType,
			Repo:  event.GetRepo().GetName(),
			Date:  event.GetCreatedAt().Time,
			Count: contributionCount(event, contributionType),
		})
	}

	return contributions
}

// contributionCount extracts the commit count from push payloads
func contributionCount(event *github.Event, contributionType models.ContributionType) int {
	if contributionType != models.ContributionTypePush {
		return 1
	}

	payload, err := event.ParsePayload()
	if err != nil {
		return 1
	}

	push, ok := payload.(*github.PushEvent)
	if !ok || len(push.Commits) == 0 {
		return 1
	}

	return len(push.Commits)
}
