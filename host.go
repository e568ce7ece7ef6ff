package chatserver

import (
	"io"
	"net"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/joker-ksh/Chat-Server-net-socket/chat"
	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
)

// Conn is the transport-facing contract consumed by the host: discrete
// terminator-stripped text lines in, raw best-effort writes out.
type Conn interface {
	io.WriteCloser

	// ReadLine blocks until one full line arrives, stripped of its
	// terminator. Returns io.EOF once the connection is gone.
	ReadLine() (string, error)

	RemoteAddr() net.Addr
}

// Host is the bridge between transport connections and the chat room.
type Host struct {
	*chat.Room
}

// NewHost creates a Host around a fresh room.
func NewHost() *Host {
	return &Host{
		Room: chat.NewRoom(),
	}
}

// Connect runs a connection against the room until it closes, blocking.
// Cleanup is unconditional: read errors and EOF land in the same place.
func (h *Host) Connect(conn Conn) {
	id := NewIdentity(conn.RemoteAddr())
	user := message.NewUserScreen(id, conn)
	go user.Consume()
	defer user.Close()

	session, err := h.Join(user)
	if err != nil {
		// Transport handed us the same connection twice.
		logger.Errorf("[%s] Failed to join: %s", conn.RemoteAddr(), err)
		return
	}
	defer h.Leave(id.ID())

	logger.Debugf("[%s] Connected: %s", conn.RemoteAddr(), id.ID())

	for {
		line, err := conn.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			logger.Errorf("[%s] Read error: %s", conn.RemoteAddr(), err)
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			// Silently ignore empty lines.
			continue
		}

		if err := h.HandleInput(session, line); err != nil {
			logger.Errorf("[%s] Command failed: %s", conn.RemoteAddr(), err)
		}
	}

	logger.Debugf("[%s] Disconnected: %s (joined %s)", conn.RemoteAddr(), id.ID(), humanize.Time(id.Created()))
}
