package workers

import (
	"context"
	"log"
	"time"

	"github.com/gitroast/gitroast/internal/services"
)

// CacheJanitor periodically deletes expired cache rows so the table does
// not grow unbounded between reads (reads only evict the key they touch).
type CacheJanitor struct {
	cacheService *services.CacheService
	interval     time.Duration
	stopChan     chan struct{}
	running      bool
}

func NewCacheJanitor(cacheService *services.CacheService, interval time.Duration) *CacheJanitor {
	return &CacheJanitor{
		cacheService: cacheService,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the janitor loop. It blocks until Stop is called or the
// context is cancelled, so run it in a goroutine.
func (j *CacheJanitor) Start(ctx context.Context) error {
	j.running = true
	log.Printf("Cache janitor started, sweeping every %v", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache janitor stopping due to context cancellation")
			return ctx.Err()
		case <-j.stopChan:
			log.Println("Cache janitor stopping")
			return nil
		case <-ticker.C:
			j.sweep()
		}
	}
}

// Stop gracefully stops the janitor
func (j *CacheJanitor) Stop() error {
	if j.running {
		j.running = false
		close(j.stopChan)
	}
	return nil
}

func (j *CacheJanitor) sweep() {
	removed, err := j.cacheService.EvictExpired()
	if err != nil {
		log.Printf("Cache janitor sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Cache janitor removed %d expired entries", removed)
	}
}
