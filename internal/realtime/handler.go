package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ====================================
// WebSocket Handler
// ====================================

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the web app's origin, native clients
	// send none. Auth happens on the REST surface; the socket only ever
	// receives what the wishlist page already shows.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler exposes the live-update socket for a wishlist.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Subscribe upgrades GET /ws/:slug and streams wishlist events until the
// peer disconnects.
func (h *Handler) Subscribe(c *gin.Context) {
	slug := c.Param("slug")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		log.Warn().Err(err).Str("slug", slug).Msg("[REALTIME] WebSocket upgrade failed")
		return
	}

	client := NewClient(h.hub, slug, conn)
	h.hub.Register(slug, client)

	go client.writePump()
	client.readPump()
}
