package models

import "time"

// Repository represents a single public repository of the profiled user.
// Instances are built once from API data and never mutated afterwards.
type Repository struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Language    string    `json:"language"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// DescriptionOrEmpty returns the description, or "" when none was set
func (r *Repository) DescriptionOrEmpty() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}
