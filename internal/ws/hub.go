package ws

import (
	"sync"

	"github.com/devshare/devshare-go/internal/domain/notification"
)

// Hub fans notification events out to every open socket of the notified
// user. Sends never block: a slow client just drops events.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[chan notification.EventDTO]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]map[chan notification.EventDTO]bool),
	}
}

// Subscribe registers a channel for the user's events. The returned
// function must be called when the socket closes.
func (h *Hub) Subscribe(uid uint) (chan notification.EventDTO, func()) {
	ch := make(chan notification.EventDTO, 16)

	h.mu.Lock()
	if h.clients[uid] == nil {
		h.clients[uid] = make(map[chan notification.EventDTO]bool)
	}
	h.clients[uid][ch] = true
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.clients[uid]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.clients, uid)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) Publish(uid uint, event notification.EventDTO) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.clients[uid] {
		select {
		case ch <- event:
		default:
		}
	}
}
