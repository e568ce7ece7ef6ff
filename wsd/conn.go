package wsd

import (
	"io"
	"net"
	"strings"

	"github.com/gorilla/websocket"
)

// maxFrameSize bounds a single inbound frame, mirroring the raw transport's
// pending-line cap.
const maxFrameSize = 4096

// Conn adapts a WebSocket connection to the line contract: one text frame
// carries one or more terminator-stripped lines in, one frame per write
// out.
type Conn struct {
	conn *websocket.Conn

	// lines already split out of the current frame, pending delivery
	lines []string
}

// NewConn wraps an upgraded WebSocket connection.
func NewConn(conn *websocket.Conn) *Conn {
	conn.SetReadLimit(maxFrameSize)
	return &Conn{conn: conn}
}

// ReadLine blocks until one full line arrives, stripped of its terminator.
func (c *Conn) ReadLine() (string, error) {
	for len(c.lines) == 0 {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", io.EOF
			}
			return "", err
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line != "" {
				c.lines = append(c.lines, line)
			}
		}
	}

	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

// Write sends raw bytes to the peer as a single text frame.
func (c *Conn) Write(data []byte) (int, error) {
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the peer's address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
