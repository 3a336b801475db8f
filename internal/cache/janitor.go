package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner is implemented by caches with expiring entries.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically evicts expired entries from registered caches.
type Janitor struct {
	interval time.Duration
	caches   []Cleaner
}

func NewJanitor(interval time.Duration, caches ...Cleaner) *Janitor {
	return &Janitor{interval: interval, caches: caches}
}

// Run blocks until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := j.Sweep(); n > 0 {
				slog.Debug("Evicted expired cache entries", "count", n)
			}
		}
	}
}

func (j *Janitor) Sweep() int {
	total := 0
	for _, c := range j.caches {
		total += c.CleanExpired()
	}
	return total
}
