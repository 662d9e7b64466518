package limiter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/and161185/stampcard/internal/errs"
)

func newRedisGuard(t *testing.T, replayTTL time.Duration) (*Guard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewGuard(NewRedis(client), replayTTL), mr
}

type recordingStore struct {
	mu    sync.Mutex
	keys  []string
	ttls  []time.Duration
	ok    bool
	err   error
	calls int
}

func (s *recordingStore) SetNX(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.keys = append(s.keys, key)
	s.ttls = append(s.ttls, ttl)
	return s.ok, s.err
}

var _ Store = (*recordingStore)(nil)

func TestClaimOnce_FirstThenReplay(t *testing.T) {
	t.Parallel()
	g, mr := newRedisGuard(t, 0)
	ctx := context.Background()

	ok, err := g.ClaimOnce(ctx, "cust.1700000000.0123456789abcdef")
	if err != nil || !ok {
		t.Fatalf("first claim: ok=%v err=%v", ok, err)
	}
	ok, err = g.ClaimOnce(ctx, "cust.1700000000.0123456789abcdef")
	if err != nil || ok {
		t.Fatalf("second claim: ok=%v err=%v", ok, err)
	}

	key := seenPrefix + HashToken("cust.1700000000.0123456789abcdef")
	if !mr.Exists(key) {
		t.Fatalf("expected key %s", key)
	}
	if ttl := mr.TTL(key); ttl != DefaultReplayTTL {
		t.Fatalf("ttl=%v, want %v", ttl, DefaultReplayTTL)
	}
	for _, k := range mr.Keys() {
		if strings.Contains(k, "cust.") {
			t.Fatalf("raw token leaked into key %q", k)
		}
	}
}

func TestClaimOnce_Concurrent_ExactlyOneWins(t *testing.T) {
	t.Parallel()
	g, _ := newRedisGuard(t, 0)

	const n = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := g.ClaimOnce(context.Background(), "same-token")
			if err != nil {
				t.Errorf("ClaimOnce: %v", err)
				return
			}
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()
	if wins != 1 {
		t.Fatalf("wins=%d, want exactly 1", wins)
	}
}

func TestClaimOnce_ReclaimableAfterTTL(t *testing.T) {
	t.Parallel()
	g, mr := newRedisGuard(t, 2*time.Minute)
	ctx := context.Background()

	if ok, _ := g.ClaimOnce(ctx, "tok"); !ok {
		t.Fatalf("first claim rejected")
	}
	mr.FastForward(2*time.Minute + time.Second)
	if ok, _ := g.ClaimOnce(ctx, "tok"); !ok {
		t.Fatalf("claim after ttl rejected")
	}
}

func TestClaimInterval_Cooldown(t *testing.T) {
	t.Parallel()
	g, mr := newRedisGuard(t, 0)
	ctx := context.Background()

	ok, err := g.ClaimInterval(ctx, "card-1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first: ok=%v err=%v", ok, err)
	}
	if ok, _ := g.ClaimInterval(ctx, "card-1", time.Minute); ok {
		t.Fatalf("second within cooldown allowed")
	}
	if ok, _ := g.ClaimInterval(ctx, "card-2", time.Minute); !ok {
		t.Fatalf("other card blocked")
	}

	mr.FastForward(59 * time.Second)
	if ok, _ := g.ClaimInterval(ctx, "card-1", time.Minute); ok {
		t.Fatalf("allowed at 59s")
	}
	mr.FastForward(2 * time.Second)
	if ok, _ := g.ClaimInterval(ctx, "card-1", time.Minute); !ok {
		t.Fatalf("blocked after cooldown")
	}
}

func TestClaimInterval_ZeroDisablesGate(t *testing.T) {
	t.Parallel()
	st := &recordingStore{ok: false}
	g := NewGuard(st, 0)

	for i := 0; i < 3; i++ {
		ok, err := g.ClaimInterval(context.Background(), "card", 0)
		if err != nil || !ok {
			t.Fatalf("zero interval: ok=%v err=%v", ok, err)
		}
	}
	if st.calls != 0 {
		t.Fatalf("store touched %d times with gate disabled", st.calls)
	}
}

func TestGuard_FailsClosedOnStoreError(t *testing.T) {
	t.Parallel()
	st := &recordingStore{ok: true, err: errors.New("dial tcp: refused")}
	g := NewGuard(st, 0)
	ctx := context.Background()

	ok, err := g.ClaimOnce(ctx, "tok")
	if ok || !errors.Is(err, errs.ErrBackendUnavailable) {
		t.Fatalf("ClaimOnce: ok=%v err=%v", ok, err)
	}
	ok, err = g.ClaimInterval(ctx, "card", time.Minute)
	if ok || !errors.Is(err, errs.ErrBackendUnavailable) {
		t.Fatalf("ClaimInterval: ok=%v err=%v", ok, err)
	}
}

func TestGuard_FailsClosedWhenRedisDown(t *testing.T) {
	t.Parallel()
	g, mr := newRedisGuard(t, 0)
	mr.Close()

	ok, err := g.ClaimOnce(context.Background(), "tok")
	if ok || !errors.Is(err, errs.ErrBackendUnavailable) {
		t.Fatalf("want fail-closed, got ok=%v err=%v", ok, err)
	}
}

func TestGuard_KeysAndTTLs(t *testing.T) {
	t.Parallel()
	st := &recordingStore{ok: true}
	g := NewGuard(st, 90*time.Second)
	ctx := context.Background()

	_, _ = g.ClaimOnce(ctx, "tok")
	_, _ = g.ClaimInterval(ctx, "card-9", 45*time.Second)

	if st.keys[0] != seenPrefix+HashToken("tok") || st.ttls[0] != 90*time.Second {
		t.Fatalf("replay key/ttl: %q %v", st.keys[0], st.ttls[0])
	}
	if st.keys[1] != cooldownPrefix+"card-9" || st.ttls[1] != 45*time.Second {
		t.Fatalf("cooldown key/ttl: %q %v", st.keys[1], st.ttls[1])
	}
}

func TestHashToken_Determinism(t *testing.T) {
	a := HashToken("1.2.3")
	b := HashToken("1.2.3")
	c := HashToken("1.2.4")
	if a != b || a == c || len(a) != 64 {
		t.Fatalf("hash mismatch/len: %d", len(a))
	}
}
