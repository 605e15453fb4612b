package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/gitroast/gitroast/internal/models"
)

// GitHubAPI is the slice of the GitHub client the profile pipeline needs
type GitHubAPI interface {
	FetchRepositories(ctx context.Context, username string) ([]models.Repository, error)
	FetchEvents(ctx context.Context, username string) ([]*github.Event, error)
}

// GitHubService fetches public repository and event data for a user.
// Only the first page of 100 items is requested from either endpoint.
type GitHubService struct {
	client  *github.Client
	timeout time.Duration
}

// NewGitHubClient creates a GitHub client, authenticated when a token is
// provided and anonymous otherwise
func NewGitHubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

func NewGitHubService(client *github.Client, timeout time.Duration) *GitHubService {
	return &GitHubService{
		client:  client,
		timeout: timeout,
	}
}

// FetchRepositories lists the user's 100 most recently updated public
// repositories, mapped into our domain records
func (s *GitHubService) FetchRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := s.client.Repositories.List(ctx, username, opt)
	if err != nil {
		return nil, classifyGitHubError("list repositories", err)
	}

	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, mapRepository(repo))
	}

	return result, nil
}

// FetchEvents lists the user's 100 most recent public events
func (s *GitHubService) FetchEvents(ctx context.Context, username string) ([]*github.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opt := &github.ListOptions{PerPage: 100}

	events, _, err := s.client.Activity.ListEventsPerformedByUser(ctx, username, true, opt)
	if err != nil {
		return nil, classifyGitHubError("list events", err)
	}

	return events, nil
}

// mapRepository converts an API repository into our immutable record,
// defaulting the fields the API may omit
func mapRepository(repo *github.Repository) models.Repository {
	return models.Repository{
		Name:        repo.GetName(),
		Description: repo.Description,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Language:    repo.GetLanguage(),
		LastUpdated: repo.GetUpdatedAt().Time,
	}
}

// classifyGitHubError separates the user-not-found case from every other
// upstream failure so handlers can answer 404 instead of a blanket 502
func classifyGitHubError(operation string, err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return ErrUserNotFound
	}

	return &UpstreamError{Operation: operation, Err: err}
}
