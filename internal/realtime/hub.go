package realtime

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// ====================================
// Hub - per-slug connection registry
// ====================================

// Hub tracks WebSocket subscribers per wishlist slug and fans events out
// to them. Registration and publishing are safe to call concurrently.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

// Register adds a client to the slug's room.
func (h *Hub) Register(slug string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[slug]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[slug] = room
	}
	room[c] = struct{}{}

	log.Debug().Str("slug", slug).Int("connections", len(room)).Msg("[REALTIME] Client registered")
}

// Unregister removes a client from the slug's room and closes its send
// queue, which stops the client's write pump. Safe to call more than
// once for the same client.
func (h *Hub) Unregister(slug string, c *Client) {
	h.mu.Lock()
	if room, ok := h.rooms[slug]; ok {
		if _, member := room[c]; member {
			delete(room, c)
			if len(room) == 0 {
				delete(h.rooms, slug)
			}
		}
	}
	h.mu.Unlock()

	c.closeSend()
}

// Publish marshals the event once and queues it on every subscriber of
// the slug. A subscriber whose queue is full is treated as dead and
// dropped, so one stuck connection cannot stall the rest of the room or
// the mutation that triggered the event.
//
// The sends happen while the room lock is held: send queues are closed
// only by Unregister under the write lock, so a client reachable through
// the room always has an open queue and fan-out can never panic against
// a concurrent disconnect.
func (h *Hub) Publish(slug string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("[REALTIME] Failed to marshal event")
		return
	}

	var slow []*Client
	h.mu.RLock()
	for c := range h.rooms[slug] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		log.Warn().Str("slug", slug).Msg("[REALTIME] Dropping slow client")
		h.Unregister(slug, c)
	}
}

// ConnectionCount reports the number of subscribers for a slug.
func (h *Hub) ConnectionCount(slug string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[slug])
}
