package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics("sluice")
	require.NoError(t, m.Register(reg))

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnLayer(ctx, &domain.LayerEvent{Frontier: 7, Expanded: 10, Dominated: 3, Trimmed: 1})
	hooks.OnLayer(ctx, &domain.LayerEvent{Frontier: 4, Expanded: 6, Dominated: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Layers))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Frontier))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.Expanded))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Dominated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Trimmed))

	hooks.OnComplete(ctx, &domain.SolveEvent{
		Request: domain.Request{Agents: 2},
		Result:  &domain.Result{Best: 1707, Exact: false, Duration: 20 * time.Millisecond},
	})
	hooks.OnComplete(ctx, &domain.SolveEvent{Err: errors.New("boom")})

	assert.Equal(t, 1707.0, testutil.ToFloat64(m.Best))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("approximate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestMetrics_CachedSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics("sluice")
	require.NoError(t, m.Register(reg))

	m.Hooks().OnComplete(context.Background(), &domain.SolveEvent{
		Request: domain.Request{Agents: 1},
		Result:  &domain.Result{Best: 1651, Exact: true, Cached: true, Duration: time.Second},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("cached")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Solves.WithLabelValues("exact")))
	assert.Equal(t, 1651.0, testutil.ToFloat64(m.Best))
	assert.Equal(t, 0, testutil.CollectAndCount(m.Duration), "cached solves are not timed again")
}

func TestMetrics_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics("sluice")
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hooks := observability.LoggingHooks(logger)
	ctx := context.Background()

	hooks.OnLayer(ctx, &domain.LayerEvent{Elapsed: 1, Frontier: 3})
	hooks.OnComplete(ctx, &domain.SolveEvent{
		Request: domain.Request{Start: "AA", Horizon: 30, Agents: 1},
		Result:  &domain.Result{Best: 1651, Exact: true},
	})
	hooks.OnComplete(ctx, &domain.SolveEvent{Request: domain.Request{Start: "ZZ"}, Err: domain.ErrUnknownStartNode})

	out := buf.String()
	assert.Contains(t, out, "msg=layer")
	assert.Contains(t, out, "best=1651")
	assert.Contains(t, out, `msg="solve failed"`)
	assert.Contains(t, out, "start=ZZ")
}
