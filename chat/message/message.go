package message

import "fmt"

// Newline is the protocol line terminator.
const Newline = "\n"

// Message is an interface for messages. String renders exactly one wire
// line, without the terminator.
type Message interface {
	String() string
}

// MessageTo is a message bound for a single recipient.
type MessageTo interface {
	Message
	To() *User
}

// MessageFrom is a message attributed to a sender.
type MessageFrom interface {
	Message
	From() *User
}

// SystemMsg is a reply sent from the server directly to one user and not
// shown to anyone else: OK, ERR, PONG, USER listings, and the welcome line.
type SystemMsg struct {
	body string
	to   *User
}

func NewSystemMsg(body string, to *User) *SystemMsg {
	return &SystemMsg{
		body: body,
		to:   to,
	}
}

// NewErrorMsg builds an ERR reply with the given protocol error code.
func NewErrorMsg(code string, to *User) *SystemMsg {
	return NewSystemMsg("ERR "+code, to)
}

func (m *SystemMsg) String() string {
	return m.body
}

func (m *SystemMsg) To() *User {
	return m.to
}

// PublicMsg is a chat message relayed to every registered user, the sender
// included. Clients rely on seeing the echo of their own messages.
type PublicMsg struct {
	body string
	from *User
}

func NewPublicMsg(body string, from *User) *PublicMsg {
	return &PublicMsg{
		body: body,
		from: from,
	}
}

func (m *PublicMsg) String() string {
	return fmt.Sprintf("MSG %s %s", m.from.Name(), m.body)
}

func (m *PublicMsg) From() *User {
	return m.from
}

// PrivateMsg is a message sent to another user, not shown to anyone else.
type PrivateMsg struct {
	body string
	from *User
	to   *User
}

func NewPrivateMsg(body string, from *User, to *User) *PrivateMsg {
	return &PrivateMsg{
		body: body,
		from: from,
		to:   to,
	}
}

func (m *PrivateMsg) String() string {
	return fmt.Sprintf("DM %s %s", m.from.Name(), m.body)
}

func (m *PrivateMsg) From() *User {
	return m.from
}

func (m *PrivateMsg) To() *User {
	return m.to
}

// AnnounceMsg is an INFO line sent to every registered user except the one
// that triggered it, like a join or leave event.
type AnnounceMsg struct {
	body   string
	except *User
}

func NewAnnounceMsg(body string, except *User) *AnnounceMsg {
	return &AnnounceMsg{
		body:   body,
		except: except,
	}
}

func (m *AnnounceMsg) String() string {
	return "INFO " + m.body
}

// Except returns the user excluded from delivery, or nil.
func (m *AnnounceMsg) Except() *User {
	return m.except
}
