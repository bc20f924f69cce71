package ws

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// time allowed to write a frame to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong before the connection is
	// considered dead
	pongWait = 60 * time.Second

	// ping interval; must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maximum inbound frame size in bytes
	maxMessageSize = 4096

	// outbound queue depth per client
	sendBufferSize = 256
)

// Client is one websocket attachment for one authenticated user. The write
// pump owns the connection for writes; everything else enqueues through
// the send channel.
type Client struct {
	userID   uuid.UUID
	username string
	conn     *websocket.Conn

	send chan []byte
	done chan struct{}

	closeOnce   sync.Once
	closeReason string
}

func newClient(userID uuid.UUID, username string, conn *websocket.Conn) *Client {
	return &Client{
		userID:   userID,
		username: username,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
}

// TrySend enqueues data without blocking. It reports false when the client
// is closed or the buffer is full, which the registry treats as a dead
// session.
func (c *Client) TrySend(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close signals the write pump to send a close frame carrying reason and
// tear the connection down. Safe to call multiple times; only the first
// reason is used.
func (c *Client) Close(reason string) {
	c.closeOnce.Do(func() {
		c.closeReason = reason
		close(c.done)
	})
}

// readPump reads frames until the connection dies and hands each one to
// onFrame. It runs on the connection's HTTP handler goroutine and returns
// when the peer goes away, the read deadline lapses, or the write pump
// drops the connection.
func (c *Client) readPump(onFrame func(raw []byte)) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("✗ ws: read error for user %s: %v", c.username, err)
			}
			return
		}
		onFrame(raw)
	}
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with periodic pings. One frame per queued event; closing the
// client delivers a close frame with the recorded reason first.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			frame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, c.closeReason)
			_ = c.conn.WriteMessage(websocket.CloseMessage, frame)
			return
		}
	}
}
