package http

import (
	"sync"
)

// Hub tracks connected clients and fans transition events out to them. It is
// the concrete Notifier behind the game: events carry only a name, clients
// converge by re-fetching state. Slow clients lose events rather than block
// the broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]chan outboundMessage[any]
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]chan outboundMessage[any])}
}

func (h *Hub) add(clientID string, send chan outboundMessage[any]) {
	h.mu.Lock()
	h.clients[clientID] = send
	h.mu.Unlock()
}

// remove drops a client. It returns only once no broadcast is still holding
// the client's channel, so the caller may close it afterwards.
func (h *Hub) remove(clientID string) {
	h.mu.Lock()
	delete(h.clients, clientID)
	h.mu.Unlock()
}

// NotifyAll pushes a named event to every connected client.
func (h *Hub) NotifyAll(event string) {
	h.broadcast("", event)
}

// NotifyOthers pushes a named event to every client except the caller, for
// transitions whose outcome the caller already knows locally.
func (h *Hub) NotifyOthers(callerID, event string) {
	h.broadcast(callerID, event)
}

func (h *Hub) broadcast(skipID, event string) {
	msg := outboundMessage[any]{Type: "event", Payload: eventPayload{Name: event}}
	h.mu.RLock()
	for id, send := range h.clients {
		if id == skipID {
			continue
		}
		select {
		case send <- msg:
		default:
			// Drop if the client is slow; it re-syncs on its next query.
		}
	}
	h.mu.RUnlock()
}
