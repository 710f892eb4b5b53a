package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/sluice/internal/logging"
	"github.com/aretw0/sluice/pkg/domain"
)

// Engine is the layer-by-layer search driver.
//
// A run starts from a single root state and expands the whole frontier one
// time unit at a time: every successor goes through the layer's dominance
// table, the surviving layer is capped by the beam, and the next layer
// begins. Runs are sequential and share nothing, so one Engine may serve
// concurrent callers.
type Engine struct {
	network     *domain.Network
	transitions *Transitions
	logger      *slog.Logger
	hooks       domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for layer progress.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a search driver over network.
func NewEngine(network *domain.Network, opts ...EngineOption) *Engine {
	e := &Engine{
		network:     network,
		transitions: NewTransitions(network),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transitions exposes the transition engine, mostly for replaying plans.
func (e *Engine) Transitions() *Transitions {
	return e.transitions
}

type candidate struct {
	value   int
	entry   entry
	settled bool
	found   bool
}

func (c *candidate) consider(value int, e entry, settled bool) {
	if !c.found || value > c.value {
		*c = candidate{value: value, entry: e, settled: settled, found: true}
	}
}

// Run searches for the maximum yield reachable within req.Horizon.
func (e *Engine) Run(ctx context.Context, req domain.Request) (*domain.Result, error) {
	req = req.Normalize()
	res, err := e.run(ctx, req)
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.SolveEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventComplete},
			Request:   req,
			Result:    res,
			Err:       err,
		})
	}
	return res, err
}

func (e *Engine) run(ctx context.Context, req domain.Request) (*domain.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if e.network == nil || e.network.Len() == 0 {
		return nil, domain.ErrEmptyNetwork
	}
	start, ok := e.network.Index(req.Start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStartNode, req.Start)
	}
	score, err := ScorerFor(req.Scorer)
	if err != nil {
		return nil, err
	}

	width := req.BeamWidth
	if req.Agents == 1 && width > 0 {
		e.logger.Debug("beam width ignored for a single agent", "beam_width", width)
		width = 0
	}
	beam := Beam{Width: width, Score: score, Network: e.network, Horizon: req.Horizon}

	var trace *arena
	if req.Trace {
		trace = &arena{}
	}

	began := time.Now()
	res := &domain.Result{}
	best := candidate{}
	frontier := []entry{{state: domain.NewRootState(e.network, start, req.Agents), step: -1}}
	positive := e.network.PositiveCount()

	for elapsed := 0; elapsed < req.Horizon && len(frontier) > 0; elapsed++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table := newLayerTable(2 * len(frontier))
		expanded := 0
		for _, cur := range frontier {
			if cur.state.Activated.Len() == positive {
				best.consider(cur.state.Projected(req.Horizon), cur, true)
				res.Settled++
				continue
			}

			n := e.transitions.Expand(cur.state, func(next domain.State, act domain.Action) {
				slot, kept := table.offer(entry{state: next, step: -1})
				if kept && trace != nil {
					table.entries[slot].step = trace.record(cur.step, act, next)
				}
			})
			expanded += n
			if n == 0 {
				best.consider(cur.state.Projected(req.Horizon), cur, true)
				res.Settled++
			}
		}

		next, trimmed := beam.Trim(table.entries)
		frontier = next

		res.Layers++
		res.Expanded += expanded
		res.Dominated += table.dominated
		res.Trimmed += trimmed
		if len(frontier) > res.Peak {
			res.Peak = len(frontier)
		}

		e.logger.Debug("layer expanded",
			"elapsed", elapsed+1,
			"frontier", len(frontier),
			"expanded", expanded,
			"dominated", table.dominated,
			"trimmed", trimmed,
		)
		if e.hooks.OnLayer != nil {
			e.hooks.OnLayer(ctx, &domain.LayerEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLayer},
				Elapsed:   elapsed + 1,
				Frontier:  len(frontier),
				Expanded:  expanded,
				Dominated: table.dominated,
				Trimmed:   trimmed,
				Best:      best.value,
			})
		}
	}

	// Whatever is left has reached the horizon.
	for _, cur := range frontier {
		best.consider(cur.state.Projected(req.Horizon), cur, false)
	}

	res.Best = best.value
	res.Exact = res.Trimmed == 0
	res.Duration = time.Since(began)
	if trace != nil && best.found {
		res.Plan = e.plan(trace, best, req)
	}
	return res, nil
}

func (e *Engine) plan(trace *arena, best candidate, req domain.Request) []domain.PlanStep {
	steps := trace.plan(e.network, best.entry.step, req.Agents)
	if best.settled && best.entry.state.Elapsed < req.Horizon {
		steps = append(steps, domain.PlanStep{
			Elapsed:   req.Horizon,
			Action:    domain.ActionSettle,
			Positions: positionIDs(e.network, best.entry.state.Positions, req.Agents),
			Yield:     best.value,
		})
	}
	return steps
}
