package chat

import (
	"strings"
	"testing"

	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
)

func TestCommandsAuthGate(t *testing.T) {
	r := NewRoom()
	s, screen := join(t, r, "conn-1")
	drain(t, s)
	screen.Read(new([]byte))

	// PING works before login.
	r.HandleInput(s, "PING")
	expectLines(t, s, screen, "PONG")

	// Everything else is gated, including a bare LOGIN with no payload.
	for _, line := range []string{"MSG hi", "WHO", "DM bob hi", "LOGIN", "PING pong", "bogus"} {
		r.HandleInput(s, line)
		expectLines(t, s, screen, "ERR not-logged-in")
	}

	r.HandleInput(s, "LOGIN alice")
	expectLines(t, s, screen, "OK", "USER alice")

	// PING still works, LOGIN no longer routes.
	r.HandleInput(s, "PING")
	expectLines(t, s, screen, "PONG")
	r.HandleInput(s, "LOGIN other")
	expectLines(t, s, screen, "ERR unknown-command")
	r.HandleInput(s, "bogus")
	expectLines(t, s, screen, "ERR unknown-command")
	r.HandleInput(s, "WHO extra")
	expectLines(t, s, screen, "ERR unknown-command")
}

func TestCommandsLoginFailureReplies(t *testing.T) {
	r := NewRoom()
	alice, aliceScreen := join(t, r, "conn-1")
	drain(t, alice)
	aliceScreen.Read(new([]byte))
	r.HandleInput(alice, "LOGIN alice")
	drain(t, alice)
	aliceScreen.Read(new([]byte))

	bob, bobScreen := join(t, r, "conn-2")
	drain(t, bob)
	bobScreen.Read(new([]byte))

	r.HandleInput(bob, "LOGIN ERR")
	expectLines(t, bob, bobScreen, "ERR invalid-username")
	r.HandleInput(bob, "LOGIN alice")
	expectLines(t, bob, bobScreen, "ERR username-taken")

	// Failures leave the session unauthenticated.
	r.HandleInput(bob, "WHO")
	expectLines(t, bob, bobScreen, "ERR not-logged-in")
}

func TestCommandsMsg(t *testing.T) {
	r := NewRoom()
	alice, aliceScreen := join(t, r, "conn-1")
	bob, bobScreen := join(t, r, "conn-2")
	r.HandleInput(alice, "LOGIN alice")
	r.HandleInput(bob, "LOGIN bob")
	drain(t, alice)
	drain(t, bob)
	aliceScreen.Read(new([]byte))
	bobScreen.Read(new([]byte))

	// Broadcast reaches everyone, the sender included.
	r.HandleInput(bob, "MSG hi all")
	expectLines(t, alice, aliceScreen, "MSG bob hi all")
	expectLines(t, bob, bobScreen, "MSG bob hi all")

	// Text is trimmed before relaying.
	r.HandleInput(bob, "MSG   spaced out  ")
	expectLines(t, alice, aliceScreen, "MSG bob spaced out")
	drain(t, bob)
	bobScreen.Read(new([]byte))

	// A whitespace-only payload is dropped without any reply.
	r.HandleInput(bob, "MSG   ")
	expectLines(t, alice, aliceScreen)
	expectLines(t, bob, bobScreen)
}

func TestCommandsWho(t *testing.T) {
	r := NewRoom()
	alice, aliceScreen := join(t, r, "conn-1")
	bob, bobScreen := join(t, r, "conn-2")
	r.HandleInput(alice, "LOGIN alice")
	r.HandleInput(bob, "LOGIN bob")
	drain(t, alice)
	drain(t, bob)
	aliceScreen.Read(new([]byte))
	bobScreen.Read(new([]byte))

	r.HandleInput(alice, "WHO")
	got := lines(t, alice, aliceScreen)
	if len(got) != 2 {
		t.Fatalf("WHO returned %d lines, expected 2: %q", len(got), got)
	}
	seen := map[string]bool{}
	for _, line := range got {
		if !strings.HasPrefix(line, "USER ") {
			t.Errorf("unexpected WHO line %q", line)
		}
		seen[line] = true
	}
	if !seen["USER alice"] || !seen["USER bob"] {
		t.Errorf("WHO listing incomplete: %q", got)
	}
}

func TestCommandsDM(t *testing.T) {
	r := NewRoom()
	alice, aliceScreen := join(t, r, "conn-1")
	bob, bobScreen := join(t, r, "conn-2")
	carol, carolScreen := join(t, r, "conn-3")
	r.HandleInput(alice, "LOGIN alice")
	r.HandleInput(bob, "LOGIN bob")
	r.HandleInput(carol, "LOGIN carol")
	drain(t, alice)
	drain(t, bob)
	drain(t, carol)
	aliceScreen.Read(new([]byte))
	bobScreen.Read(new([]byte))
	carolScreen.Read(new([]byte))

	// No text segment at all.
	r.HandleInput(alice, "DM bob")
	expectLines(t, alice, aliceScreen, "ERR bad-dm")

	// Empty target and whitespace-only text are both malformed.
	r.HandleInput(alice, "DM  bob hi")
	expectLines(t, alice, aliceScreen, "ERR bad-dm")
	r.HandleInput(alice, "DM bob   ")
	expectLines(t, alice, aliceScreen, "ERR bad-dm")

	r.HandleInput(alice, "DM ghost hello")
	expectLines(t, alice, aliceScreen, "ERR no-such-user")

	r.HandleInput(alice, "DM bob secret stuff")
	expectLines(t, alice, aliceScreen, "OK")
	expectLines(t, bob, bobScreen, "DM alice secret stuff")
	expectLines(t, carol, carolScreen)
}

func TestCommandsCustomRegistry(t *testing.T) {
	c := Commands{}
	c.Add(Command{
		Prefix:  "PING",
		PreAuth: true,
		Handler: func(room *Room, s *Session, args string) error {
			s.Send(message.NewSystemMsg("PONG", s.User))
			return nil
		},
	})

	r := NewRoom()
	r.SetCommands(c)
	s, screen := join(t, r, "conn-1")
	drain(t, s)
	screen.Read(new([]byte))

	r.HandleInput(s, "PING")
	expectLines(t, s, screen, "PONG")

	// LOGIN is absent from this registry, so it no longer routes.
	r.HandleInput(s, "LOGIN alice")
	expectLines(t, s, screen, "ERR not-logged-in")
}
