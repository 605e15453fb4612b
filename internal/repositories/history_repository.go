package repositories

import (
	"database/sql"

	"github.com/gitroast/gitroast/internal/models"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{
		db: db,
	}
}

// CreateSearch records one profile search
func (r *HistoryRepository) CreateSearch(record *models.SearchRecord) error {
	query := `
		INSERT INTO search_history (id, username, searched_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(query, record.ID, record.Username, record.SearchedAt)
	return err
}

// GetRecentSearches returns the most recent searches, newest first
func (r *HistoryRepository) GetRecentSearches(limit int) ([]*models.SearchRecord, error) {
	query := `
		SELECT id, username, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SearchRecord
	for rows.Next() {
		record := &models.SearchRecord{}
		if err := rows.Scan(&record.ID, &record.Username, &record.SearchedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CreateFavorite pins a username. Inserting an already-pinned username fails
// with a unique constraint violation.
func (r *HistoryRepository) CreateFavorite(favorite *models.Favorite) error {
	query := `
		INSERT INTO favorites (id, username, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(query, favorite.ID, favorite.Username, favorite.CreatedAt)
	return err
}

// DeleteFavorite unpins a username
func (r *HistoryRepository) DeleteFavorite(username string) error {
	query := `DELETE FROM favorites WHERE username = $1`

	result, err := r.db.Exec(query, username)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// GetFavorites lists pinned usernames, oldest first
func (r *HistoryRepository) GetFavorites() ([]*models.Favorite, error) {
	query := `
		SELECT id, username, created_at
		FROM favorites
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.Favorite
	for rows.Next() {
		favorite := &models.Favorite{}
		if err := rows.Scan(&favorite.ID, &favorite.Username, &favorite.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, rows.Err()
}
