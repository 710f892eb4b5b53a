package sluice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/sluice/internal/runtime"
	"github.com/aretw0/sluice/pkg/adapters/file"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/ports"
)

// DefaultLockTTL bounds how long a replica may hold the solve lock of a fingerprint.
const DefaultLockTTL = 30 * time.Second

// Optimizer is the high-level entry point for the Sluice library.
// It wraps the internal search runtime and adds request defaults, result
// caching and cross-replica locking on top of it.
type Optimizer struct {
	runtime  *runtime.Engine
	network  *domain.Network
	defaults domain.Request
	store    ports.ResultStore
	locker   ports.DistributedLocker
	lockTTL  time.Duration
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	Name     string
}

// Option defines a functional option for configuring the Optimizer.
type Option func(*Optimizer)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *Optimizer) {
		o.hooks = o.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the optimizer.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Optimizer) {
		o.logger = logger
	}
}

// WithStore enables result caching. Results are keyed by domain.Fingerprint.
func WithStore(store ports.ResultStore) Option {
	return func(o *Optimizer) {
		o.store = store
	}
}

// WithLocker serializes identical solves across replicas sharing a store.
// It has no effect without WithStore.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(o *Optimizer) {
		o.locker = locker
		o.lockTTL = ttl
	}
}

// WithDefaults sets the request values used when a Solve call leaves them zero.
func WithDefaults(req domain.Request) Option {
	return func(o *Optimizer) {
		o.defaults = req
	}
}

// WithName labels the optimizer (and its logs), e.g. with the network file name.
func WithName(name string) Option {
	return func(o *Optimizer) {
		o.Name = name
	}
}

// New initializes an Optimizer over a built network.
func New(network *domain.Network, opts ...Option) (*Optimizer, error) {
	if network == nil {
		return nil, fmt.Errorf("network is required")
	}

	opt := &Optimizer{network: network}
	for _, o := range opts {
		o(opt)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if opt.logger == nil {
		opt.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if opt.Name != "" {
		opt.logger = opt.logger.With("network", opt.Name)
	}
	if opt.lockTTL <= 0 {
		opt.lockTTL = DefaultLockTTL
	}

	opt.runtime = runtime.NewEngine(network,
		runtime.WithLifecycleHooks(opt.hooks),
		runtime.WithLogger(opt.logger),
	)
	return opt, nil
}

// FromProblem initializes an Optimizer whose defaults come from the problem.
// Options given later override them.
func FromProblem(p *domain.Problem, opts ...Option) (*Optimizer, error) {
	if p == nil {
		return nil, fmt.Errorf("problem is required")
	}
	return New(p.Network, append([]Option{WithDefaults(p.Defaults)}, opts...)...)
}

// Load reads a network file (.txt, .yaml, .yml or .json) and initializes an Optimizer over it.
func Load(path string, opts ...Option) (*Optimizer, error) {
	problem, err := file.NewLoader("").Load(path)
	if err != nil {
		return nil, err
	}
	return FromProblem(problem, append([]Option{WithName(filepath.Base(path))}, opts...)...)
}

// Network returns the network the optimizer searches over.
func (o *Optimizer) Network() *domain.Network {
	return o.network
}

// Defaults returns the request defaults applied by Solve.
func (o *Optimizer) Defaults() domain.Request {
	return o.defaults
}

// Resolve fills the zero fields of req from the optimizer defaults and normalizes it.
func (o *Optimizer) Resolve(req domain.Request) domain.Request {
	p := domain.Problem{Network: o.network, Defaults: o.defaults}
	return p.Apply(req).Normalize()
}

// Solve runs the search for req.
// With a store configured, a previous result for the same network and request
// is returned with Cached set and no search is run; OnComplete still fires for
// it. Store failures are logged and never fail the solve.
func (o *Optimizer) Solve(ctx context.Context, req domain.Request) (*domain.Result, error) {
	req = o.Resolve(req)

	if o.store == nil {
		return o.runtime.Run(ctx, req)
	}

	key := domain.Fingerprint(o.network, req)
	logger := o.logger.With("fingerprint", key[:12])

	if res := o.cached(ctx, logger, key); res != nil {
		o.complete(ctx, req, res)
		return res, nil
	}

	if o.locker != nil {
		unlock, err := o.locker.Lock(ctx, key, o.lockTTL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("solve lock unavailable, solving without it", "error", err)
		} else {
			defer func() {
				// The caller's context may be gone by now; release on a fresh one.
				if err := unlock(context.Background()); err != nil {
					logger.Warn("failed to release solve lock", "error", err)
				}
			}()
			// Another replica may have solved it while we waited.
			if res := o.cached(ctx, logger, key); res != nil {
				o.complete(ctx, req, res)
				return res, nil
			}
		}
	}

	res, err := o.runtime.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := o.store.Save(ctx, key, res); err != nil {
		logger.Error("failed to cache result", "error", err)
	}
	return res, nil
}

func (o *Optimizer) cached(ctx context.Context, logger *slog.Logger, key string) *domain.Result {
	res, err := o.store.Load(ctx, key)
	switch {
	case err == nil:
		logger.Debug("result served from cache", "best", res.Best)
		res.Cached = true
		return res
	case errors.Is(err, domain.ErrResultNotFound):
		return nil
	default:
		logger.Error("failed to read cached result", "error", err)
		return nil
	}
}

// complete reports a solve answered from the store, which the engine never sees.
func (o *Optimizer) complete(ctx context.Context, req domain.Request, res *domain.Result) {
	if o.hooks.OnComplete == nil {
		return
	}
	o.hooks.OnComplete(ctx, &domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventComplete},
		Request:   req.Normalize(),
		Result:    res,
	})
}
