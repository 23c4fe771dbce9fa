package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active capture-feed watcher connections.
type Manager struct {
	mu       sync.RWMutex
	watchers map[string]*websocket.Conn // watcherID -> conn
}

func NewManager() *Manager {
	return &Manager{watchers: make(map[string]*websocket.Conn)}
}

// Register registers a watcher connection, replacing any existing one.
func (m *Manager) Register(watcherID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.watchers[watcherID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.watchers[watcherID] = conn
}

// Unregister removes a watcher connection.
func (m *Manager) Unregister(watcherID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.watchers[watcherID]; ok {
		_ = conn.Close()
		delete(m.watchers, watcherID)
	}
}

// Broadcast sends a text message to every connected watcher. Watchers
// whose connection fails are dropped.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.watchers {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.watchers, id)
		}
	}
}

// Count returns the number of connected watchers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.watchers)
}
