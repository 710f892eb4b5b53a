package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/sluice"
	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/internal/logging"
	"github.com/aretw0/sluice/pkg/adapters/file"
	"github.com/aretw0/sluice/pkg/adapters/memory"
	"github.com/aretw0/sluice/pkg/adapters/redis"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/observability"
)

// createLogger configures the application logger from the config.
// Logs go to Stderr so Stdout stays free for results.
func createLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Format == "json" {
		return logging.NewJSON(os.Stderr, level), nil
	}
	return logging.New(level), nil
}

// createOptimizer initializes an Optimizer for the network file with standard
// CLI conventions: config defaults under file defaults under flags, the
// result cache picked from the config (Redis first, then a cache directory)
// and debug hooks when logging at debug level.
// The returned cleanup releases the cache connection.
func createOptimizer(cfg *config.Config, path string, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*sluice.Optimizer, func() error, error) {
	problem, err := file.NewLoader("").Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading network: %w", err)
	}

	opts := []sluice.Option{
		sluice.WithLogger(logger),
		sluice.WithDefaults(mergeDefaults(cfg.Search, problem.Defaults)),
		sluice.WithName(path),
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, sluice.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}
	for _, h := range hooks {
		opts = append(opts, sluice.WithLifecycleHooks(h))
	}

	cleanup := func() error { return nil }
	switch {
	case cfg.Redis.Addr != "":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix+"result:"),
			redis.WithTTL(cfg.Redis.TTL),
		)
		locker := redis.NewLocker(store.Client(), cfg.Redis.Prefix)
		opts = append(opts, sluice.WithStore(store), sluice.WithLocker(locker, cfg.Redis.LockTTL))
		cleanup = store.Close
		logger.Debug("result cache enabled", "backend", "redis", "addr", cfg.Redis.Addr)
	case cfg.Cache.Dir != "":
		opts = append(opts, sluice.WithStore(file.NewStore(cfg.Cache.Dir)), sluice.WithLocker(memory.NewLocker(), 0))
		logger.Debug("result cache enabled", "backend", "file", "dir", cfg.Cache.Dir)
	}

	opt, err := sluice.New(problem.Network, opts...)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("error initializing optimizer: %w", err)
	}
	return opt, cleanup, nil
}

// mergeDefaults layers the values written in the network file over the config ones.
func mergeDefaults(cfg, file domain.Request) domain.Request {
	p := domain.Problem{Defaults: cfg}
	merged := p.Apply(file)
	merged.Trace = cfg.Trace || file.Trace
	return merged
}
