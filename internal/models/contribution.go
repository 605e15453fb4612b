package models

import "time"

// ContributionType represents the kind of public activity behind a contribution
type ContributionType string

const (
	ContributionTypePush        ContributionType = "push"
	ContributionTypePullRequest ContributionType = "pull-request"
	ContributionTypeIssue       ContributionType = "issue"
	ContributionTypeCreate      ContributionType = "create"
)

// Contribution is a normalized public event attributed to the profiled user
type Contribution struct {
	Type  ContributionType `json:"type"`
	Repo  string           `json:"repo"`
	Date  time.Time        `json:"date"`
	Count int              `json:"count"`
}
