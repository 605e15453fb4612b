package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitroast/gitroast/internal/models"
)

func setupTestGitHubService(t *testing.T, handler http.Handler) *GitHubService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return NewGitHubService(client, 5*time.Second)
}

func TestFetchRepositoriesMapsPayload(t *testing.T) {
	service := setupTestGitHubService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users/alice/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"name": "alpha",
				"description": "first project",
				"stargazers_count": 12,
				"forks_count": 3,
				"language": "Go",
				"updated_at": "2024-05-01T10:00:00Z"
			},
			{
				"name": "beta",
				"description": null,
				"stargazers_count": 0,
				"forks_count": 0,
				"language": null,
				"updated_at": "2023-01-01T00:00:00Z"
			}
		]`))
	}))

	repos, err := service.FetchRepositories(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "alpha", repos[0].Name)
	assert.Equal(t, "first project", repos[0].DescriptionOrEmpty())
	assert.Equal(t, 12, repos[0].Stars)
	assert.Equal(t, 3, repos[0].Forks)
	assert.Equal(t, "Go", repos[0].Language)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), repos[0].LastUpdated)

	// Missing optional fields default explicitly
	assert.Nil(t, repos[1].Description)
	assert.Equal(t, "", repos[1].Language)
}

func TestFetchRepositoriesNotFound(t *testing.T) {
	service := setupTestGitHubService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	}))

	_, err := service.FetchRepositories(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFetchRepositoriesUpstreamFailure(t *testing.T) {
	service := setupTestGitHubService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))

	_, err := service.FetchRepositories(context.Background(), "alice")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "list repositories", upstreamErr.Operation)
}

func TestFetchEvents(t *testing.T) {
	service := setupTestGitHubService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/events/public", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"type": "PushEvent",
				"repo": {"name": "alice/alpha"},
				"created_at": "2024-05-01T10:00:00Z",
				"payload": {"commits": [{"sha": "a"}, {"sha": "b"}]}
			}
		]`))
	}))

	events, err := service.FetchEvents(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "PushEvent", events[0].GetType())
	assert.Equal(t, "alice/alpha", events[0].GetRepo().GetName())
}

func TestClassifyGitHubError(t *testing.T) {
	notFound := &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}}
	assert.ErrorIs(t, classifyGitHubError("list repositories", notFound), ErrUserNotFound)

	plain := errors.New("connection refused")
	err := classifyGitHubError("list events", plain)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, plain, upstreamErr.Err)
}

func TestMapRepositoryDefaults(t *testing.T) {
	repo := mapRepository(&github.Repository{})

	assert.Equal(t, models.Repository{}, repo)
}
