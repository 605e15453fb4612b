package models

import "time"

// AnalyticsEvent is a single tracked application event
type AnalyticsEvent struct {
	Category  string    `json:"category"`
	Action    string    `json:"action"`
	Label     string    `json:"label,omitempty"`
	Value     int       `json:"value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsSummary aggregates the event log by category
type AnalyticsSummary struct {
	TotalEvents    int            `json:"totalEvents"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

// AnalyticsReport is the full event log plus its summary
type AnalyticsReport struct {
	Events  []AnalyticsEvent `json:"events"`
	Summary AnalyticsSummary `json:"summary"`
}
