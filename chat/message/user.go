package message

import (
	"errors"
	"io"
	"sync"
)

const messageBuffer = 32

var ErrUserClosed = errors.New("user closed")

// User definition, implements set Item interface. Outbound messages are
// queued on a buffered channel and drained by Consume, so a slow reader
// never blocks the sender of a broadcast.
type User struct {
	Identifier

	mu        sync.RWMutex
	msg       chan Message
	done      chan struct{}
	screen    io.WriteCloser
	closeOnce sync.Once
}

func NewUser(identity Identifier) *User {
	return &User{
		Identifier: identity,
		msg:        make(chan Message, messageBuffer),
		done:       make(chan struct{}),
	}
}

// NewUserScreen creates a user attached to an output stream.
func NewUserScreen(identity Identifier, screen io.WriteCloser) *User {
	u := NewUser(identity)
	u.screen = screen

	return u
}

// Wait blocks until the user is closed.
func (u *User) Wait() {
	<-u.done
}

// Close disconnects the user and stops accepting messages.
func (u *User) Close() {
	u.closeOnce.Do(func() {
		u.mu.Lock()
		if u.screen != nil {
			u.screen.Close()
		}
		close(u.msg)
		close(u.done)
		u.msg = nil
		u.mu.Unlock()
	})
}

// Consume drains the message buffer into the user's screen. Will block,
// should be called in a goroutine.
func (u *User) Consume() {
	for m := range u.ConsumeChan() {
		u.HandleMsg(m)
	}
}

// ConsumeOne receives one queued message and stops, mostly for testing.
func (u *User) ConsumeOne() Message {
	return <-u.ConsumeChan()
}

// ConsumeChan returns the outbound message queue, mostly for testing.
func (u *User) ConsumeChan() <-chan Message {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.msg
}

// HandleMsg renders one message to the screen, blocking.
func (u *User) HandleMsg(m Message) error {
	_, err := u.screen.Write([]byte(m.String() + Newline))
	if err != nil {
		logger.Printf("Write failed to %s, closing: %s", u.ID(), err)
		u.Close()
	}
	return err
}

// Send queues a message for the user. Best-effort: a full queue means the
// reader has stalled, which is terminal for this user only.
func (u *User) Send(m Message) error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.msg == nil {
		return ErrUserClosed
	}
	select {
	case u.msg <- m:
	default:
		logger.Printf("Msg buffer full, closing: %s", u.ID())
		go u.Close()
		return ErrUserClosed
	}
	return nil
}
