package repositories

import (
	"database/sql"
	"time"
)

type CacheRepository struct {
	db *sql.DB
}

func NewCacheRepository(db *sql.DB) *CacheRepository {
	return &CacheRepository{
		db: db,
	}
}

// Set stores or replaces a cache entry under the given key
func (r *CacheRepository) Set(key, data string, cachedAt time.Time) error {
	query := `
		INSERT INTO profile_cache (key, data, cached_at)
		VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, cached_at = excluded.cached_at
	`

	_, err := r.db.Exec(query, key, data, cachedAt)
	return err
}

// Get retrieves a cache entry. Returns sql.ErrNoRows when the key is absent.
func (r *CacheRepository) Get(key string) (string, time.Time, error) {
	query := `
		SELECT data, cached_at
		FROM profile_cache
		WHERE key = $1
	`

	var data string
	var cachedAt time.Time
	err := r.db.QueryRow(query, key).Scan(&data, &cachedAt)
	if err != nil {
		return "", time.Time{}, err
	}

	return data, cachedAt, nil
}

// Delete removes a cache entry unconditionally
func (r *CacheRepository) Delete(key string) error {
	query := `DELETE FROM profile_cache WHERE key = $1`

	_, err := r.db.Exec(query, key)
	return err
}

// DeleteByPrefix removes every entry whose key starts with the given prefix
func (r *CacheRepository) DeleteByPrefix(prefix string) error {
	query := `DELETE FROM profile_cache WHERE key LIKE $1 || '%'`

	_, err := r.db.Exec(query, prefix)
	return err
}

// DeleteExpired removes entries cached before the given cutoff and
// returns how many rows were removed
func (r *CacheRepository) DeleteExpired(cutoff time.Time) (int64, error) {
	query := `DELETE FROM profile_cache WHERE cached_at < $1`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
