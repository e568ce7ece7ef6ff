package tcpd

import (
	"net"
)

// Listener accepts TCP connections and wraps each one in a line-splitting
// Conn.
type Listener struct {
	net.Listener
}

// Listen opens a TCP listener socket.
func Listen(laddr string) (*Listener, error) {
	socket, err := net.Listen("tcp", laddr)
	if err != nil {
		return nil, err
	}
	return &Listener{Listener: socket}, nil
}

// ServeConns accepts incoming connections and yields them. The channel is
// closed when the listener dies.
func (l *Listener) ServeConns() <-chan *Conn {
	ch := make(chan *Conn)

	go func() {
		defer l.Close()
		defer close(ch)

		for {
			conn, err := l.Accept()
			if err != nil {
				logger.Printf("Failed to accept connection: %v", err)
				return
			}
			ch <- NewConn(conn)
		}
	}()

	return ch
}
