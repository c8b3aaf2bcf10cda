package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounter_IncrementWithinWindow(t *testing.T) {
	counter := NewMemoryCounter()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := counter.Increment(ctx, "award:actor-1", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestMemoryCounter_KeysAreIndependent(t *testing.T) {
	counter := NewMemoryCounter()
	ctx := context.Background()

	_, err := counter.Increment(ctx, "award:actor-1", time.Hour)
	require.NoError(t, err)
	_, err = counter.Increment(ctx, "award:actor-1", time.Hour)
	require.NoError(t, err)

	count, err := counter.Increment(ctx, "award:actor-2", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCounter_WindowRollover(t *testing.T) {
	counter := NewMemoryCounter()
	ctx := context.Background()

	first, err := counter.Increment(ctx, "award:actor-1", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	time.Sleep(25 * time.Millisecond)

	second, err := counter.Increment(ctx, "award:actor-1", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second)
}

func TestMemoryCounter_ConcurrentIncrements(t *testing.T) {
	counter := NewMemoryCounter()
	ctx := context.Background()

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			_, err := counter.Increment(ctx, "award:actor-1", time.Hour)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	count, err := counter.Increment(ctx, "award:actor-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines+1), count)
}
