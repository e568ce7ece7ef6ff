package chat

import (
	"strings"

	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
)

// Command is a definition of a handler for a protocol keyword.
type Command struct {
	// The keyword, such as LOGIN
	Prefix string
	// HasArgs means the keyword only matches when followed by a space and a
	// payload; a bare "LOGIN" is not a LOGIN command.
	HasArgs bool
	// PreAuth commands are dispatched before login.
	PreAuth bool
	// PreAuthOnly commands stop matching once logged in.
	PreAuthOnly bool
	// Handler receives everything after the keyword and its separating
	// space, verbatim.
	Handler func(*Room, *Session, string) error
}

// Commands is a registry of available commands.
type Commands map[string]*Command

// Add will register a command.
func (c Commands) Add(cmd Command) {
	c[cmd.Prefix] = &cmd
}

// Run parses one input line and executes the matching command against the
// session's current state. Protocol violations are replied to inline and
// never returned as errors.
func (c Commands) Run(room *Room, s *Session, line string) error {
	word, args := line, ""
	hasArgs := false
	if i := strings.IndexByte(line, ' '); i >= 0 {
		word, args, hasArgs = line[:i], line[i+1:], true
	}

	cmd, ok := c[word]
	if ok && cmd.HasArgs != hasArgs {
		ok = false
	}

	if !s.LoggedIn() {
		if ok && cmd.PreAuth {
			return cmd.Handler(room, s, args)
		}
		s.Send(message.NewErrorMsg("not-logged-in", s.User))
		return nil
	}

	if !ok || cmd.PreAuthOnly {
		s.Send(message.NewErrorMsg("unknown-command", s.User))
		return nil
	}
	return cmd.Handler(room, s, args)
}

var defaultCommands *Commands

func init() {
	c := Commands{}

	c.Add(Command{
		Prefix:  "PING",
		PreAuth: true,
		Handler: func(room *Room, s *Session, args string) error {
			s.Send(message.NewSystemMsg("PONG", s.User))
			return nil
		},
	})

	c.Add(Command{
		Prefix:      "LOGIN",
		HasArgs:     true,
		PreAuth:     true,
		PreAuthOnly: true,
		Handler: func(room *Room, s *Session, args string) error {
			if err := room.Claim(s, args); err != nil {
				s.Send(message.NewErrorMsg(err.Error(), s.User))
			}
			return nil
		},
	})

	c.Add(Command{
		Prefix:  "MSG",
		HasArgs: true,
		Handler: func(room *Room, s *Session, args string) error {
			text := strings.TrimSpace(args)
			if text == "" {
				// Whitespace-only payloads are dropped without a reply.
				return nil
			}
			room.HandleMsg(message.NewPublicMsg(text, s.User))
			return nil
		},
	})

	c.Add(Command{
		Prefix: "WHO",
		Handler: func(room *Room, s *Session, args string) error {
			room.SendNames(s)
			return nil
		},
	})

	c.Add(Command{
		Prefix:  "DM",
		HasArgs: true,
		Handler: func(room *Room, s *Session, args string) error {
			i := strings.IndexByte(args, ' ')
			if i < 0 {
				s.Send(message.NewErrorMsg("bad-dm", s.User))
				return nil
			}
			target := strings.TrimSpace(args[:i])
			text := strings.TrimSpace(args[i+1:])
			if target == "" || text == "" {
				s.Send(message.NewErrorMsg("bad-dm", s.User))
				return nil
			}

			to, ok := room.MemberByName(target)
			if !ok {
				s.Send(message.NewErrorMsg("no-such-user", s.User))
				return nil
			}

			room.HandleMsg(message.NewPrivateMsg(text, s.User, to.User))
			s.Send(message.NewSystemMsg("OK", s.User))
			return nil
		},
	})

	defaultCommands = &c
}
