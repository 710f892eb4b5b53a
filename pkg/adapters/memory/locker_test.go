package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/sluice/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_LockUnlock(t *testing.T) {
	l := memory.NewLocker()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "fp1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Held())

	// A different key does not contend.
	unlock2, err := l.Lock(ctx, "fp2", time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))

	require.NoError(t, unlock(ctx))
	// Double unlock is a no-op.
	require.NoError(t, unlock(ctx))
	assert.Equal(t, 0, l.Held())
}

func TestLocker_Contention(t *testing.T) {
	l := memory.NewLocker()

	unlock, err := l.Lock(context.Background(), "fp", time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "fp", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, l.Held(), "timed out waiter must drop its reference")

	require.NoError(t, unlock(context.Background()))

	unlock, err = l.Lock(context.Background(), "fp", time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock(context.Background()))
	assert.Equal(t, 0, l.Held())
}

func TestLocker_MutualExclusion(t *testing.T) {
	l := memory.NewLocker()
	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "fp", time.Second)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			_ = unlock(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.Held())
}
