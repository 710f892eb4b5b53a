package observability

import (
	"context"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the optimizer hooks.
type Metrics struct {
	Layers    prometheus.Counter
	Frontier  prometheus.Gauge
	Expanded  prometheus.Counter
	Dominated prometheus.Counter
	Trimmed   prometheus.Counter
	Solves    *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	Best      prometheus.Gauge
}

// NewMetrics creates the collectors under the given namespace (e.g. "sluice").
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Layers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layers_total",
			Help:      "Total number of time layers expanded",
		}),
		Frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_states",
			Help:      "Frontier size after the most recent layer",
		}),
		Expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_expanded_total",
			Help:      "Total number of successor states generated",
		}),
		Dominated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_dominated_total",
			Help:      "Total number of states discarded by the dominance table",
		}),
		Trimmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_trimmed_total",
			Help:      "Total number of states discarded by the beam",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total number of solves by outcome (exact, approximate, cached, error)",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of completed solves",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"agents"}),
		Best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_yield",
			Help:      "Best yield of the most recent successful solve",
		}),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.Layers, m.Frontier, m.Expanded, m.Dominated, m.Trimmed, m.Solves, m.Duration, m.Best,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLayer: func(ctx context.Context, e *domain.LayerEvent) {
			m.Layers.Inc()
			m.Frontier.Set(float64(e.Frontier))
			m.Expanded.Add(float64(e.Expanded))
			m.Dominated.Add(float64(e.Dominated))
			m.Trimmed.Add(float64(e.Trimmed))
		},
		OnComplete: func(ctx context.Context, e *domain.SolveEvent) {
			m.Solves.WithLabelValues(outcome(e)).Inc()
			if e.Err != nil || e.Result == nil {
				return
			}
			m.Best.Set(float64(e.Result.Best))
			if e.Result.Cached {
				// The search ran earlier; its duration is already recorded.
				return
			}
			agents := "1"
			if e.Request.Agents == 2 {
				agents = "2"
			}
			m.Duration.WithLabelValues(agents).Observe(e.Result.Duration.Seconds())
		},
	}
}

func outcome(e *domain.SolveEvent) string {
	switch {
	case e.Err != nil:
		return "error"
	case e.Result != nil && e.Result.Cached:
		return "cached"
	case e.Result != nil && !e.Result.Exact:
		return "approximate"
	default:
		return "exact"
	}
}
