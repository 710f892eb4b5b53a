package sluice_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/sluice"
	"github.com/aretw0/sluice/pkg/adapters/memory"
	"github.com/aretw0/sluice/pkg/adapters/redis"
	"github.com/aretw0/sluice/pkg/domain"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps a memory store and counts writes.
type countingStore struct {
	*memory.Store
	saves atomic.Int32
}

func (s *countingStore) Save(ctx context.Context, key string, result *domain.Result) error {
	s.saves.Add(1)
	return s.Store.Save(ctx, key, result)
}

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("store down")

func (brokenStore) Save(context.Context, string, *domain.Result) error { return errBroken }
func (brokenStore) Load(context.Context, string) (*domain.Result, error) {
	return nil, errBroken
}
func (brokenStore) Delete(context.Context, string) error     { return errBroken }
func (brokenStore) List(context.Context) ([]string, error) { return nil, errBroken }

func TestLoad_ExampleNetwork(t *testing.T) {
	opt, err := sluice.Load("examples/networks/example.txt")
	require.NoError(t, err)
	assert.Equal(t, "example.txt", opt.Name)

	res, err := opt.Solve(context.Background(), domain.Request{Start: "AA", Horizon: 30})
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Best)
	assert.True(t, res.Exact)
	assert.False(t, res.Cached)
}

func TestLoad_DefaultsFromFile(t *testing.T) {
	opt, err := sluice.Load("examples/networks/example.yaml")
	require.NoError(t, err)

	req := opt.Resolve(domain.Request{})
	assert.Equal(t, domain.Request{Start: "AA", Horizon: 26, Agents: 2, BeamWidth: 1000, Scorer: domain.ScorerAccumulated}, req)

	// Explicit fields win over file defaults.
	res, err := opt.Solve(context.Background(), domain.Request{Agents: 1, Horizon: 30})
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Best)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := sluice.Load("examples/networks/missing.txt")
	assert.Error(t, err)
}

func TestNew_RequiresNetwork(t *testing.T) {
	_, err := sluice.New(nil)
	assert.Error(t, err)

	_, err = sluice.FromProblem(nil)
	assert.Error(t, err)
}

func TestSolve_Errors(t *testing.T) {
	opt, err := sluice.Load("examples/networks/isolated.json")
	require.NoError(t, err)

	_, err = opt.Solve(context.Background(), domain.Request{Start: "ZZ"})
	assert.ErrorIs(t, err, domain.ErrUnknownStartNode)

	_, err = opt.Solve(context.Background(), domain.Request{Agents: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	res, err := opt.Solve(context.Background(), domain.Request{})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Best)
}

func TestSolve_CachesResults(t *testing.T) {
	store := &countingStore{Store: memory.NewStore()}
	opt, err := sluice.Load("examples/networks/example.txt", sluice.WithStore(store))
	require.NoError(t, err)
	ctx := context.Background()
	req := domain.Request{Start: "AA", Horizon: 30}

	first, err := opt.Solve(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := opt.Solve(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Best, second.Best)
	assert.Equal(t, int32(1), store.saves.Load())

	// A different request is a different fingerprint.
	third, err := opt.Solve(ctx, domain.Request{Start: "AA", Horizon: 20})
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, int32(2), store.saves.Load())

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestSolve_StoreFailureDoesNotFailSolve(t *testing.T) {
	opt, err := sluice.Load("examples/networks/isolated.json", sluice.WithStore(brokenStore{}))
	require.NoError(t, err)

	res, err := opt.Solve(context.Background(), domain.Request{})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Best)
	assert.False(t, res.Cached)
}

func TestSolve_WithRedisLocker(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client)
	locker := redis.NewLocker(client, "sluice:")

	opt, err := sluice.Load("examples/networks/example.txt",
		sluice.WithStore(store),
		sluice.WithLocker(locker, time.Second),
	)
	require.NoError(t, err)

	ctx := context.Background()
	req := domain.Request{Start: "AA", Horizon: 30, Trace: true}

	res, err := opt.Solve(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Best)
	assert.NotEmpty(t, res.Plan)

	cached, err := opt.Solve(ctx, req)
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	assert.Equal(t, res.Plan, cached.Plan)

	fp := domain.Fingerprint(opt.Network(), opt.Resolve(req))
	assert.False(t, mr.Exists("sluice:lock:"+fp), "lock must be released after solve")
}

func TestSolve_LifecycleHooks(t *testing.T) {
	var layers, completes int
	hooks := domain.LifecycleHooks{
		OnLayer:    func(context.Context, *domain.LayerEvent) { layers++ },
		OnComplete: func(context.Context, *domain.SolveEvent) { completes++ },
	}
	extra := domain.LifecycleHooks{
		OnComplete: func(context.Context, *domain.SolveEvent) { completes++ },
	}

	opt, err := sluice.Load("examples/networks/example.txt",
		sluice.WithLifecycleHooks(hooks),
		sluice.WithLifecycleHooks(extra),
	)
	require.NoError(t, err)

	res, err := opt.Solve(context.Background(), domain.Request{Start: "AA", Horizon: 5})
	require.NoError(t, err)
	assert.Equal(t, res.Layers, layers)
	assert.Equal(t, 2, completes)
}

func TestSolve_CachedResultFiresOnComplete(t *testing.T) {
	var events []*domain.SolveEvent
	hooks := domain.LifecycleHooks{
		OnComplete: func(_ context.Context, e *domain.SolveEvent) { events = append(events, e) },
	}

	store := memory.NewStore()
	opt, err := sluice.Load("examples/networks/isolated.json",
		sluice.WithStore(store),
		sluice.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)

	ctx := context.Background()
	req := domain.Request{Horizon: 3}
	seeded := &domain.Result{Best: 20, Exact: true, Layers: 3}
	require.NoError(t, store.Save(ctx, domain.Fingerprint(opt.Network(), opt.Resolve(req)), seeded))

	res, err := opt.Solve(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Cached)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventComplete, events[0].Type)
	assert.NoError(t, events[0].Err)
	require.NotNil(t, events[0].Result)
	assert.True(t, events[0].Result.Cached)
	assert.Equal(t, 20, events[0].Result.Best)
	assert.Equal(t, "A", events[0].Request.Start)
}

func TestSolve_CachedResultAfterLockFiresOnComplete(t *testing.T) {
	var completes atomic.Int32
	hooks := domain.LifecycleHooks{
		OnComplete: func(context.Context, *domain.SolveEvent) { completes.Add(1) },
	}

	store := memory.NewStore()
	locker := memory.NewLocker()
	opt, err := sluice.Load("examples/networks/isolated.json",
		sluice.WithStore(store),
		sluice.WithLocker(locker, time.Second),
		sluice.WithLifecycleHooks(hooks),
	)
	require.NoError(t, err)

	ctx := context.Background()
	req := domain.Request{Horizon: 3}
	key := domain.Fingerprint(opt.Network(), opt.Resolve(req))

	// Hold the lock so Solve waits, then publish a result as another replica would.
	unlock, err := locker.Lock(ctx, key, time.Second)
	require.NoError(t, err)

	done := make(chan *domain.Result, 1)
	go func() {
		res, err := opt.Solve(ctx, req)
		assert.NoError(t, err)
		done <- res
	}()

	time.Sleep(50 * time.Millisecond) // Let Solve miss the store and block on the lock
	require.NoError(t, store.Save(ctx, key, &domain.Result{Best: 20, Exact: true}))
	require.NoError(t, unlock(ctx))

	res := <-done
	require.NotNil(t, res)
	assert.True(t, res.Cached)
	assert.Equal(t, int32(1), completes.Load())
}

func TestSolve_ExplicitUnboundedBeamBeatsDefaults(t *testing.T) {
	opt, err := sluice.Load("examples/networks/example.txt",
		sluice.WithDefaults(domain.Request{Start: "AA", Horizon: 30, Agents: 1, BeamWidth: 1000}),
	)
	require.NoError(t, err)

	req := domain.Request{Agents: 2, Horizon: 26, BeamWidth: domain.BeamUnbounded}
	assert.Equal(t, domain.BeamUnbounded, opt.Resolve(req).BeamWidth)

	res, err := opt.Solve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1707, res.Best)
	assert.True(t, res.Exact)
	assert.Zero(t, res.Trimmed)

	// Leaving the width zero still takes the default.
	assert.Equal(t, 1000, opt.Resolve(domain.Request{Agents: 2}).BeamWidth)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, sluice.Version)
}
