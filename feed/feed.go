package feed

import (
	"sync"
)

// CaptureEvent is one "pokemon caught" record pushed to watchers.
type CaptureEvent struct {
	PokemonID string `json:"pokemon_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	TrainerID string `json:"trainer_id"`
	CaughtAt  string `json:"caught_at"`
}

const defaultLimit = 100

// CaptureLog keeps the most recent capture events in memory, oldest
// first, capped at a fixed limit.
type CaptureLog struct {
	mu     sync.RWMutex
	events []CaptureEvent
	limit  int
}

func NewCaptureLog(limit int) *CaptureLog {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &CaptureLog{
		events: make([]CaptureEvent, 0, limit),
		limit:  limit,
	}
}

// Add appends an event, dropping the oldest once the limit is reached.
func (cl *CaptureLog) Add(event CaptureEvent) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.events = append(cl.events, event)
	if len(cl.events) > cl.limit {
		cl.events = cl.events[len(cl.events)-cl.limit:]
	}
}

// Recent returns a copy of the buffered events to avoid external
// modifications.
func (cl *CaptureLog) Recent() []CaptureEvent {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	events := make([]CaptureEvent, len(cl.events))
	copy(events, cl.events)
	return events
}

// Stats returns statistics about the buffered events.
func (cl *CaptureLog) Stats() map[string]interface{} {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	byType := make(map[string]int)
	for _, event := range cl.events {
		byType[event.Type]++
	}

	return map[string]interface{}{
		"total_events":  len(cl.events),
		"events_limit":  cl.limit,
		"count_by_type": byType,
	}
}
