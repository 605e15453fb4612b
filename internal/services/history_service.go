package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gitroast/gitroast/internal/models"
	"github.com/gitroast/gitroast/internal/repositories"
)

// recentSearchLimit caps how many history rows a listing returns
const recentSearchLimit = 50

// HistoryService tracks which profiles were searched and which ones the
// user pinned as favorites
type HistoryService struct {
	historyRepo *repositories.HistoryRepository
}

func NewHistoryService(historyRepo *repositories.HistoryRepository) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
	}
}

// RecordSearch appends one search to the history
func (s *HistoryService) RecordSearch(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	return s.historyRepo.CreateSearch(models.NewSearchRecord(username))
}

// RecentSearches returns the newest searches first
func (s *HistoryService) RecentSearches() ([]*models.SearchRecord, error) {
	return s.historyRepo.GetRecentSearches(recentSearchLimit)
}

// AddFavorite pins a username. Pinning an already-pinned username is a no-op.
func (s *HistoryService) AddFavorite(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	err := s.historyRepo.CreateFavorite(models.NewFavorite(username))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil
	}
	return err
}

// RemoveFavorite unpins a username; unknown usernames are a no-op
func (s *HistoryService) RemoveFavorite(username string) error {
	err := s.historyRepo.DeleteFavorite(username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// Favorites lists pinned usernames
func (s *HistoryService) Favorites() ([]*models.Favorite, error) {
	return s.historyRepo.GetFavorites()
}
