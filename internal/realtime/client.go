package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Per-connection outbound queue. Once full the client is dropped.
	sendBufferSize = 32
)

// wsConn is the slice of *websocket.Conn the pumps use. Tests substitute
// a recording fake.
type wsConn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
	Close() error
}

// Client is one WebSocket subscriber. All writes to the connection go
// through the send channel and a single write pump, so the gorilla
// one-writer rule holds.
type Client struct {
	hub  *Hub
	slug string
	conn wsConn

	send      chan []byte
	closeOnce sync.Once
}

func NewClient(hub *Hub, slug string, conn wsConn) *Client {
	return &Client{
		hub:  hub,
		slug: slug,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump drains inbound frames until the peer goes away. The protocol
// is one-directional; client frames carry no meaning beyond keepalive.
// Blocks until the connection errors, then unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.slug, c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// writePump forwards queued events to the peer and keeps the connection
// alive with pings. Exits when the send queue is closed by Unregister or
// when a write fails.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
