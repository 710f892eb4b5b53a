package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLayer    EventType = "layer"
	EventComplete EventType = "complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// LayerEvent is emitted after a time layer has been expanded and filtered.
type LayerEvent struct {
	EventBase
	Elapsed   int `json:"elapsed"`
	Frontier  int `json:"frontier"`
	Expanded  int `json:"expanded"`
	Dominated int `json:"dominated"`
	Trimmed   int `json:"trimmed"`
	Best      int `json:"best"`
}

// SolveEvent is emitted once per solve, after the search has finished or failed.
type SolveEvent struct {
	EventBase
	Request Request `json:"request"`
	Result  *Result `json:"result,omitempty"`
	Err     error   `json:"-"`
}

// LifecycleHooks defines callbacks for optimizer observability.
type LifecycleHooks struct {
	OnLayer    func(context.Context, *LayerEvent)
	OnComplete func(context.Context, *SolveEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnLayer: func(ctx context.Context, e *LayerEvent) {
			if h.OnLayer != nil {
				h.OnLayer(ctx, e)
			}
			if other.OnLayer != nil {
				other.OnLayer(ctx, e)
			}
		},
		OnComplete: func(ctx context.Context, e *SolveEvent) {
			if h.OnComplete != nil {
				h.OnComplete(ctx, e)
			}
			if other.OnComplete != nil {
				other.OnComplete(ctx, e)
			}
		},
	}
}
