package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/jonathan/cvmaker/internal/types"
)

// broker fans out document snapshots to live preview listeners. The store
// publishes once per effective mutation; each connected client gets its own
// buffered channel and slow clients drop updates instead of blocking the
// mutation path.
type broker struct {
	mu     sync.Mutex
	conns  map[chan types.Resume]struct{}
	closed bool
}

func newBroker() *broker {
	return &broker{conns: make(map[chan types.Resume]struct{})}
}

func (b *broker) publish(r types.Resume) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.conns {
		select {
		case ch <- r:
		default:
			// Listener is behind; it will catch up on the next update.
		}
	}
}

func (b *broker) subscribe() chan types.Resume {
	ch := make(chan types.Resume, 4)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.conns[ch] = struct{}{}
	return ch
}

func (b *broker) unsubscribe(ch chan types.Resume) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conns[ch]; ok {
		delete(b.conns, ch)
		close(ch)
	}
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.conns {
		close(ch)
	}
	b.conns = map[chan types.Resume]struct{}{}
}

// SSEWriter helps write Server-Sent Events.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// handleEvents streams a document update event to the client after every
// effective mutation, so a preview pane can re-render without polling.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ch := s.broker.subscribe()
	defer s.broker.unsubscribe(ch)

	// Prime the client with the current document.
	if err := sse.WriteEvent("update", s.store.Snapshot()); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot, ok := <-ch:
			if !ok {
				return
			}
			if err := sse.WriteEvent("update", snapshot); err != nil {
				return
			}
		}
	}
}
