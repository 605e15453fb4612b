package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecord is one entry in the profile search history
type SearchRecord struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	SearchedAt time.Time `json:"searched_at"`
}

// NewSearchRecord creates a new SearchRecord with a generated UUID
func NewSearchRecord(username string) *SearchRecord {
	return &SearchRecord{
		ID:         uuid.New().String(),
		Username:   username,
		SearchedAt: time.Now(),
	}
}

// Favorite is a profile the user has pinned for quick access
type Favorite struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFavorite creates a new Favorite with a generated UUID
func NewFavorite(username string) *Favorite {
	return &Favorite{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}
}
