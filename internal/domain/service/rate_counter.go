package service

import (
	"context"
	"time"
)

// RateCounter is a shared, keyed counter used for fixed-window rate limiting.
// The in-memory implementation is process-local; the interface exists so a
// distributed counter store can be substituted without touching callers.
type RateCounter interface {
	// Increment adds one to the counter for key within the current fixed
	// window and returns the resulting count.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
