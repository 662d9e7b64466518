package limiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemory_SetNXExpiry(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	m := NewMemory(clk.Now)
	ctx := context.Background()

	ok, err := m.SetNX(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	clk.Advance(59 * time.Second)
	ok, err = m.SetNX(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	clk.Advance(time.Second)
	ok, err = m.SetNX(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "key is claimable once its ttl has elapsed")
}

func TestMemory_Purge(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	m := NewMemory(clk.Now)
	ctx := context.Background()

	_, _ = m.SetNX(ctx, "short", time.Second)
	_, _ = m.SetNX(ctx, "long", time.Hour)
	clk.Advance(time.Minute)

	n, err := m.Purge(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	ok, _ := m.SetNX(ctx, "long", time.Hour)
	require.False(t, ok)
}

func TestMemory_ConcurrentExactlyOne(t *testing.T) {
	t.Parallel()
	g := NewGuard(NewMemory(nil), 0)

	const n = 64
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := g.ClaimInterval(context.Background(), "card-1", time.Minute)
			if err != nil {
				t.Errorf("ClaimInterval: %v", err)
				return
			}
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}

func TestMemory_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemory(nil).SetNX(ctx, "k", time.Second)
	require.ErrorIs(t, err, context.Canceled)
}
