package ws

import (
	"sync"

	"github.com/killallgit/summarizer-api/internal/services/summarize"
)

// ProgressEvent is the message pushed to subscribed clients.
type ProgressEvent struct {
	JobID    string             `json:"job_id"`
	Progress summarize.Progress `json:"progress"`
}

// Hub fans pipeline progress out to websocket subscribers. Broadcast never
// blocks; a subscriber that cannot keep up loses events rather than
// stalling the pipeline.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan ProgressEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan ProgressEvent]struct{}),
	}
}

// Subscribe registers interest in one job's progress. jobID "*" receives
// every job's events. The returned channel is buffered; call the returned
// cancel function when done.
func (h *Hub) Subscribe(jobID string) (<-chan ProgressEvent, func()) {
	ch := make(chan ProgressEvent, 16)

	h.mu.Lock()
	if h.subscribers[jobID] == nil {
		h.subscribers[jobID] = make(map[chan ProgressEvent]struct{})
	}
	h.subscribers[jobID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.subscribers[jobID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, jobID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a progress event to every subscriber of the job and
// to wildcard subscribers, dropping events for full channels.
func (h *Hub) Broadcast(jobID string, p summarize.Progress) {
	event := ProgressEvent{JobID: jobID, Progress: p}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, key := range []string{jobID, "*"} {
		for ch := range h.subscribers[key] {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
