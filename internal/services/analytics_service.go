package services

import (
	"sync"
	"time"

	"github.com/gitroast/gitroast/internal/models"
)

// AnalyticsService is an append-only in-memory event log. It lives for the
// process lifetime; there is no persistence and no eviction.
type AnalyticsService struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent

	now func() time.Time
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		now: time.Now,
	}
}

// Track appends one event to the log, stamping it with the current time
func (s *AnalyticsService) Track(category, action, label string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, models.AnalyticsEvent{
		Category:  category,
		Action:    action,
		Label:     label,
		Value:     value,
		Timestamp: s.now(),
	})
}

// Report returns the full event log plus a count-per-category summary
func (s *AnalyticsService) Report() models.AnalyticsReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]models.AnalyticsEvent, len(s.events))
	copy(events, s.events)

	categoryCounts := make(map[string]int)
	for _, event := range events {
		categoryCounts[event.Category]++
	}

	return models.AnalyticsReport{
		Events: events,
		Summary: models.AnalyticsSummary{
			TotalEvents:    len(events),
			CategoryCounts: categoryCounts,
		},
	}
}
