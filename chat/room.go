package chat

import (
	"errors"
	"strings"
	"sync"

	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
	"github.com/joker-ksh/Chat-Server-net-socket/set"
)

// WelcomeText is sent as an INFO line the moment a connection opens.
const WelcomeText = "Welcome. Please LOGIN <username>"

// The error returned when a claimed name is empty, contains a character
// outside [A-Za-z0-9_], or is a reserved protocol keyword. The error text
// doubles as the wire error code.
var ErrInvalidName = errors.New("invalid-username")

// The error returned when a claimed name is already registered. Uniqueness
// is case-sensitive.
var ErrNameTaken = errors.New("username-taken")

// Protocol keywords that can never be claimed as usernames, matched
// case-insensitively.
var reservedNames = []string{"INFO", "MSG", "DM", "USER", "OK", "ERR", "PING", "PONG", "WHO"}

// Room tracks every live session and the identity registry, and routes
// messages between them.
type Room struct {
	commands Commands

	// mu serializes claim and leave so the session table and the registry
	// can never disagree about who owns a name.
	mu       sync.Mutex
	sessions *set.Set // connection ID -> *Session

	// Members is the identity registry: username -> *Session.
	Members *set.Set
}

// NewRoom creates a new room.
func NewRoom() *Room {
	return &Room{
		commands: *defaultCommands,
		sessions: set.New(),
		Members:  set.New(),
	}
}

// SetCommands sets the room's command handlers.
func (r *Room) SetCommands(commands Commands) {
	r.commands = commands
}

// Join registers a new unauthenticated session for the user's connection
// and greets it. Fails only if a session already exists for that
// connection ID.
func (r *Room) Join(u *message.User) (*Session, error) {
	session := &Session{User: u}
	if err := r.sessions.AddNew(set.Itemize(u.ID(), session)); err != nil {
		return nil, err
	}
	session.Send(message.NewSystemMsg("INFO "+WelcomeText, u))
	return session, nil
}

// Leave destroys the session for a connection ID. If the session owned a
// registry entry, the entry is removed and everyone else is told. Safe to
// call more than once per connection: close and error signals both land
// here.
func (r *Room) Leave(id string) {
	r.mu.Lock()
	item, err := r.sessions.Get(id)
	if err != nil {
		// Already gone, duplicate close/error signal.
		r.mu.Unlock()
		return
	}
	session := item.Value().(*Session)
	r.sessions.Remove(id)

	name := session.Name()
	announce := false
	if name != "" {
		if m, err := r.Members.Get(name); err == nil && m.Value().(*Session) == session {
			r.Members.Remove(name)
			announce = true
		}
	}
	r.mu.Unlock()

	if announce {
		r.HandleMsg(message.NewAnnounceMsg(name+" disconnected", session.User))
	}
}

// Claim is the login operation: it validates the raw name, registers it,
// replies OK plus a USER line per registered name, and announces the join
// to everyone else. On failure the session stays unauthenticated and the
// returned error text is the wire error code.
func (r *Room) Claim(s *Session, rawName string) error {
	name := strings.TrimSpace(rawName)
	if !ValidName(name) {
		return ErrInvalidName
	}

	r.mu.Lock()
	if err := r.Members.AddNew(set.Itemize(name, s)); err != nil {
		r.mu.Unlock()
		return ErrNameTaken
	}
	s.SetName(name)
	r.mu.Unlock()

	logger.Printf("%s claimed by %s", name, s.ID())

	s.Send(message.NewSystemMsg("OK", s.User))
	r.SendNames(s)
	r.HandleMsg(message.NewAnnounceMsg(name+" connected", s.User))
	return nil
}

// SendNames replies with one USER line per registered name, in registry
// iteration order.
func (r *Room) SendNames(s *Session) {
	r.Members.Each(func(name string, item set.Item) error {
		s.Send(message.NewSystemMsg("USER "+name, s.User))
		return nil
	})
}

// MemberByName returns the registered session owning a username, if any.
func (r *Room) MemberByName(name string) (*Session, bool) {
	item, err := r.Members.Get(name)
	if err != nil {
		return nil, false
	}
	return item.Value().(*Session), true
}

// HandleMsg routes one message: directed messages go to their recipient,
// announces go to every registered session except the triggering one, and
// everything else is broadcast to all registered sessions, sender
// included. Delivery is best-effort per recipient; a dead recipient is
// closed and cleaned up by its own connection handling.
func (r *Room) HandleMsg(m message.Message) {
	switch m := m.(type) {
	case *message.AnnounceMsg:
		except := m.Except()
		r.Members.Each(func(name string, item set.Item) error {
			session := item.Value().(*Session)
			if except != nil && session.User == except {
				// Skip the user this announce is about
				return nil
			}
			session.Send(m)
			return nil
		})
	case message.MessageTo:
		m.To().Send(m)
	default:
		r.Members.Each(func(name string, item set.Item) error {
			item.Value().(*Session).Send(m)
			return nil
		})
	}
}

// HandleInput dispatches one trimmed, non-empty input line from a session.
func (r *Room) HandleInput(s *Session, line string) error {
	return r.commands.Run(r, s, line)
}

// ValidName reports whether a name may be claimed: non-empty, only
// [A-Za-z0-9_], and not a reserved keyword in any casing.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		isLetter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
		isDigit := c >= '0' && c <= '9'
		if !isLetter && !isDigit && c != '_' {
			return false
		}
	}
	for _, keyword := range reservedNames {
		if strings.EqualFold(name, keyword) {
			return false
		}
	}
	return true
}
