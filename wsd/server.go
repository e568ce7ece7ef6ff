package wsd

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The protocol carries no credentials, any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes the chat protocol over WebSocket frames. Each upgraded
// connection is handed to HandlerFunc, which blocks for its lifetime.
type Server struct {
	HandlerFunc func(conn *Conn)

	httpServer *http.Server
}

// NewServer creates a WebSocket server bound to laddr with the chat
// endpoint on /ws.
func NewServer(laddr string) *Server {
	s := &Server{}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	s.httpServer = &http.Server{Addr: laddr, Handler: mux}

	return s
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Printf("Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	if s.HandlerFunc != nil {
		s.HandlerFunc(NewConn(conn))
	}
}

// ListenAndServe serves until the server is closed. Blocks.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Close shuts the server down.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
