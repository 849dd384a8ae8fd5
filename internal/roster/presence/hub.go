// Package presence fans out "staff seen" updates to interested sinks. The
// auth middleware emits an update per authenticated request; the roster store
// subscribes to keep login state current without coupling the middleware to
// the roster.
package presence

import (
	"log/slog"
	"sync"
	"time"
)

// Update is one observation of an authenticated staff user.
type Update struct {
	ActorID   string
	ActorName string
	Device    string
	SeenAt    time.Time
}

// Sink receives presence updates. Sinks must be fast or the hub's buffer
// will fill and updates will be dropped.
type Sink func(Update)

// Hub buffers updates and delivers them to sinks from a background
// goroutine so the request hot path never blocks on presence bookkeeping.
type Hub struct {
	mu      sync.RWMutex
	sinks   []Sink
	updates chan Update
	wg      sync.WaitGroup
	logger  *slog.Logger
	closed  bool
}

// HubOption configures the Hub.
type HubOption func(*Hub)

// WithHubLogger sets a logger for drop reporting.
func WithHubLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

// NewHub creates a hub with the given buffer size.
func NewHub(buffer int, opts ...HubOption) *Hub {
	if buffer < 1 {
		buffer = 64
	}
	h := &Hub{updates: make(chan Update, buffer)}
	for _, opt := range opts {
		opt(h)
	}
	h.wg.Add(1)
	go h.deliver()
	return h
}

// Subscribe registers a sink for all future updates.
func (h *Hub) Subscribe(sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, sink)
}

// Emit queues an update without blocking. When the buffer is full the update
// is dropped; presence is advisory, the next request will refresh it.
func (h *Hub) Emit(u Update) {
	if u.SeenAt.IsZero() {
		u.SeenAt = time.Now()
	}
	// The read lock is held across the send so Close cannot close the
	// channel between the closed check and the send. The send never blocks.
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.updates <- u:
	default:
		if h.logger != nil {
			h.logger.Warn("presence buffer full, update dropped", "actor", u.ActorID)
		}
	}
}

func (h *Hub) deliver() {
	defer h.wg.Done()
	for u := range h.updates {
		h.mu.RLock()
		sinks := h.sinks
		h.mu.RUnlock()
		for _, sink := range sinks {
			sink(u)
		}
	}
}

// Close stops delivery and waits for buffered updates to drain.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.updates)
	h.mu.Unlock()
	h.wg.Wait()
}
