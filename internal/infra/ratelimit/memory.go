// Package ratelimit provides a process-local fixed-window rate counter.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"perk/internal/domain/service"
)

// memoryCounter implements service.RateCounter with an in-process map.
// Windows are aligned to the epoch, so every instance agrees on window
// boundaries for a given duration. Counters for past windows are dropped
// lazily on access and swept periodically.
type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	windowStart int64
	count       int64
}

// NewMemoryCounter is the constructor for memoryCounter.
func NewMemoryCounter() service.RateCounter {
	counter := &memoryCounter{
		entries: make(map[string]*windowEntry),
	}

	go counter.sweep()

	return counter
}

// Increment adds one to the key's counter within the current fixed window and
// returns the resulting count.
func (c *memoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	if window <= 0 {
		window = time.Minute
	}

	windowStart := time.Now().UnixNano() / int64(window) * int64(window)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.windowStart != windowStart {
		entry = &windowEntry{windowStart: windowStart}
		c.entries[key] = entry
	}

	entry.count++

	return entry.count, nil
}

// sweep drops entries whose window ended more than an hour ago, bounding
// memory for long-running processes with many distinct actors.
func (c *memoryCounter) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour).UnixNano()

		c.mu.Lock()
		for key, entry := range c.entries {
			if entry.windowStart < cutoff {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
