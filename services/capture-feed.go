package services

import (
	"encoding/json"
	"log"

	"pokedex-server/feed"
	"pokedex-server/ws"
)

// CaptureFeed records capture events and pushes them to connected
// websocket watchers.
type CaptureFeed struct {
	log *feed.CaptureLog
	mgr *ws.Manager
}

func NewCaptureFeed(mgr *ws.Manager) *CaptureFeed {
	return &CaptureFeed{
		log: feed.NewCaptureLog(0),
		mgr: mgr,
	}
}

// Publish buffers the event and broadcasts it to all watchers.
func (cf *CaptureFeed) Publish(event feed.CaptureEvent) {
	cf.log.Add(event)

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to encode capture event for %s: %v", event.PokemonID, err)
		return
	}
	cf.mgr.Broadcast(payload)
}

// Recent returns the buffered capture events.
func (cf *CaptureFeed) Recent() []feed.CaptureEvent {
	return cf.log.Recent()
}

// Stats returns feed statistics including the current watcher count.
func (cf *CaptureFeed) Stats() map[string]interface{} {
	stats := cf.log.Stats()
	stats["watchers"] = cf.mgr.Count()
	return stats
}
