package chatserver

import (
	"net"
	"time"

	"github.com/google/uuid"
)

// Identity is a container for everything that identifies a client
// connection. The ID is an opaque handle minted when the connection opens;
// the name is claimed later, at login.
type Identity struct {
	id      string
	name    string
	addr    net.Addr
	created time.Time
}

// NewIdentity returns a new identity object for a connection.
func NewIdentity(addr net.Addr) *Identity {
	return &Identity{
		id:      uuid.NewString(),
		addr:    addr,
		created: time.Now(),
	}
}

// ID returns the connection handle for the Identity.
func (i *Identity) ID() string {
	return i.id
}

// Name returns the claimed username, empty before login.
func (i *Identity) Name() string {
	return i.name
}

// SetName records the claimed username.
func (i *Identity) SetName(name string) {
	i.name = name
}

// RemoteAddr returns the connection's remote address.
func (i *Identity) RemoteAddr() net.Addr {
	return i.addr
}

// Created returns when the connection opened.
func (i *Identity) Created() time.Time {
	return i.created
}
