package tcpd

import (
	"bytes"
	"net"
)

// maxPending caps how many raw bytes may accumulate without a line
// terminator before the pending partial line is discarded. Protects
// against unbounded growth from terminator-less streams.
const maxPending = 2000

const chunkSize = 512

// Conn wraps a net.Conn and splits the incoming byte stream into discrete
// text lines. Writes pass straight through to the socket.
type Conn struct {
	conn    net.Conn
	pending []byte
	chunk   [chunkSize]byte
	readErr error
}

// NewConn wraps an accepted socket.
func NewConn(conn net.Conn) *Conn {
	return &Conn{conn: conn}
}

// ReadLine blocks until one full line arrives and returns it stripped of
// its terminator. A partial line that outgrows maxPending is dropped and
// reading continues; the caller never sees a partial line.
func (c *Conn) ReadLine() (string, error) {
	for {
		if i := bytes.IndexByte(c.pending, '\n'); i >= 0 {
			line := bytes.TrimSuffix(c.pending[:i], []byte{'\r'})
			s := string(line)
			c.pending = c.pending[i+1:]
			return s, nil
		}
		if c.readErr != nil {
			return "", c.readErr
		}
		if len(c.pending) > maxPending {
			logger.Printf("Pending line from %s over %d bytes, discarding", c.conn.RemoteAddr(), maxPending)
			c.pending = nil
		}

		n, err := c.conn.Read(c.chunk[:])
		if n > 0 {
			c.pending = append(c.pending, c.chunk[:n]...)
		}
		if err != nil {
			// Drain whatever arrived before the error first.
			c.readErr = err
		}
	}
}

// Write sends raw bytes to the peer.
func (c *Conn) Write(data []byte) (int, error) {
	return c.conn.Write(data)
}

// Close closes the underlying socket.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the peer's address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
