package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/sluice/pkg/domain"
)

type streamKey struct{}

// WithStream tags ctx so the stream hooks publish its solve events under id.
func WithStream(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, streamKey{}, id)
}

// StreamFrom returns the stream id carried by ctx, if any.
func StreamFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(streamKey{}).(string)
	return id, ok && id != ""
}

// StreamManager handles active SSE connections
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // StreamID -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

func (sm *StreamManager) Subscribe(streamID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 64)
	if _, ok := sm.subscribers[streamID]; !ok {
		sm.subscribers[streamID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[streamID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[streamID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, streamID)
			}
		}
	}
}

func (sm *StreamManager) Broadcast(streamID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if subs, ok := sm.subscribers[streamID]; ok {
		for ch := range subs {
			select {
			case ch <- msg:
			default:
				// Drop message if channel is full (slow client)
				slog.Warn("SSE: Client buffer full, dropping message", "stream", streamID)
			}
		}
	}
}

// Hooks returns lifecycle hooks that publish layer and completion events to
// the stream named in the solve context.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	publish := func(ctx context.Context, event any) {
		id, ok := StreamFrom(ctx)
		if !ok {
			return
		}
		if bytes, err := json.Marshal(event); err == nil {
			sm.Broadcast(id, string(bytes))
		}
	}
	return domain.LifecycleHooks{
		OnLayer: func(ctx context.Context, e *domain.LayerEvent) {
			publish(ctx, e)
		},
		OnComplete: func(ctx context.Context, e *domain.SolveEvent) {
			publish(ctx, e)
		},
	}
}

// SubscribeEvents handles the GET /events?stream=ID request (SSE).
// The generated wrapper rejects requests without a stream id.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, params SubscribeEventsParams) {
	streamID := params.Stream

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(streamID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE Client Disconnected", "stream", streamID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
