package chatserver

import (
	"bufio"
	"net"
	"sort"
	"testing"

	"github.com/joker-ksh/Chat-Server-net-socket/tcpd"
)

type testClient struct {
	net.Conn
	scanner *bufio.Scanner
}

// connect attaches an in-memory connection to the host and returns the
// client end.
func connect(t *testing.T, h *Host) *testClient {
	t.Helper()
	client, server := net.Pipe()
	go h.Connect(tcpd.NewConn(server))
	return &testClient{
		Conn:    client,
		scanner: bufio.NewScanner(client),
	}
}

func (c *testClient) sendLine(t *testing.T, line string) {
	t.Helper()
	if _, err := c.Write([]byte(line + "\n")); err != nil {
		t.Fatalf("write %q failed: %s", line, err)
	}
}

func (c *testClient) readLine(t *testing.T) string {
	t.Helper()
	if !c.scanner.Scan() {
		t.Fatalf("connection closed early: %v", c.scanner.Err())
	}
	return c.scanner.Text()
}

func (c *testClient) expectLine(t *testing.T, expected string) {
	t.Helper()
	if actual := c.readLine(t); actual != expected {
		t.Errorf("Got: %q; Expected: %q", actual, expected)
	}
}

func TestHostSession(t *testing.T) {
	h := NewHost()

	a := connect(t, h)
	defer a.Close()
	a.expectLine(t, "INFO Welcome. Please LOGIN <username>")

	b := connect(t, h)
	defer b.Close()
	b.expectLine(t, "INFO Welcome. Please LOGIN <username>")

	// Login gate: anything but PING and LOGIN is rejected.
	a.sendLine(t, "PING")
	a.expectLine(t, "PONG")
	a.sendLine(t, "MSG hello?")
	a.expectLine(t, "ERR not-logged-in")

	a.sendLine(t, "LOGIN alice")
	a.expectLine(t, "OK")
	a.expectLine(t, "USER alice")

	b.sendLine(t, "LOGIN bob")
	b.expectLine(t, "OK")
	users := []string{b.readLine(t), b.readLine(t)}
	sort.Strings(users)
	if users[0] != "USER alice" || users[1] != "USER bob" {
		t.Errorf("unexpected USER snapshot: %q", users)
	}
	a.expectLine(t, "INFO bob connected")

	// Broadcast echoes back to the sender too.
	b.sendLine(t, "MSG hi all")
	a.expectLine(t, "MSG bob hi all")
	b.expectLine(t, "MSG bob hi all")

	a.sendLine(t, "DM bob secret")
	a.expectLine(t, "OK")
	b.expectLine(t, "DM alice secret")

	a.sendLine(t, "DM ghost boo")
	a.expectLine(t, "ERR no-such-user")

	// Disconnect announces to the others and frees the name.
	a.Close()
	b.expectLine(t, "INFO alice disconnected")

	b.sendLine(t, "WHO")
	b.expectLine(t, "USER bob")
}

func TestHostEmptyLinesIgnored(t *testing.T) {
	h := NewHost()

	c := connect(t, h)
	defer c.Close()
	c.expectLine(t, "INFO Welcome. Please LOGIN <username>")

	c.sendLine(t, "")
	c.sendLine(t, "   ")
	c.sendLine(t, "PING")
	c.expectLine(t, "PONG")
}
