package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/gitroast/gitroast/internal/models"
	"github.com/gitroast/gitroast/internal/repositories"
	"github.com/gitroast/gitroast/pkg/logger"
)

// cacheKeyPrefix namespaces our rows so unrelated tooling sharing the
// database file never collides with profile entries
const cacheKeyPrefix = "gh_roaster_"

// CacheService is a time-expiring profile store keyed by username.
// Entries older than the TTL are treated as absent and evicted on read.
type CacheService struct {
	cacheRepo *repositories.CacheRepository
	ttl       time.Duration

	now func() time.Time
}

func NewCacheService(cacheRepo *repositories.CacheRepository, ttl time.Duration) *CacheService {
	return &CacheService{
		cacheRepo: cacheRepo,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Set stores a profile under the given key with the current timestamp
func (s *CacheService) Set(key string, profile *models.GitHubProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return s.cacheRepo.Set(cacheKeyPrefix+key, string(data), s.now())
}

// Get returns the cached profile for the key if one exists and is fresh.
// Stale entries are evicted as a side effect. Corrupt or unreadable entries
// are logged and treated as a miss.
func (s *CacheService) Get(key string) (*models.GitHubProfile, bool) {
	data, cachedAt, err := s.cacheRepo.Get(cacheKeyPrefix + key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.WithError(err).WithField("key", key).Warnf("cache read failed, treating as miss")
		}
		return nil, false
	}

	if s.now().Sub(cachedAt) > s.ttl {
		if err := s.cacheRepo.Delete(cacheKeyPrefix + key); err != nil {
			logger.WithError(err).WithField("key", key).Warnf("failed to evict stale cache entry")
		}
		return nil, false
	}

	var profile models.GitHubProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		logger.WithError(ErrCacheCorrupt).WithField("key", key).Warnf("dropping undecodable cache entry")
		if err := s.cacheRepo.Delete(cacheKeyPrefix + key); err != nil {
			logger.WithError(err).WithField("key", key).Warnf("failed to evict corrupt cache entry")
		}
		return nil, false
	}

	return &profile, true
}

// Remove deletes a cached profile unconditionally
func (s *CacheService) Remove(key string) error {
	return s.cacheRepo.Delete(cacheKeyPrefix + key)
}

// Clear deletes every profile entry under our namespace
func (s *CacheService) Clear() error {
	return s.cacheRepo.DeleteByPrefix(cacheKeyPrefix)
}

// EvictExpired removes every entry older than the TTL. Used by the
// background janitor so stale rows do not accumulate between reads.
func (s *CacheService) EvictExpired() (int64, error) {
	return s.cacheRepo.DeleteExpired(s.now().Add(-s.ttl))
}
