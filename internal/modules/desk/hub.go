package desk

import (
	"sync"
)

// conn is the slice of a websocket connection the hub touches, so
// tests can attach fakes.
type conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub fans events out to every connected front-desk terminal.
type Hub struct {
	connections map[int64]conn
	nextID      int64
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]conn),
	}
}

// Register adds a terminal and returns its connection id for later
// unregistering.
func (h *Hub) Register(c conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = c
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[id]; exists && c != nil {
		_ = c.Close()
		delete(h.connections, id)
	}
}

// Broadcast writes the event to every terminal. Connections that fail
// the write are dropped.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	targets := make(map[int64]conn, len(h.connections))
	for id, c := range h.connections {
		targets[id] = c
	}
	h.mutex.RUnlock()

	for id, c := range targets {
		if c == nil {
			continue
		}
		if err := c.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, c := range h.connections {
		if c != nil {
			_ = c.Close()
		}
		delete(h.connections, id)
	}
}
