package chat

import (
	"github.com/joker-ksh/Chat-Server-net-socket/chat/message"
)

// Session is the per-connection record tracked by a Room from open to
// close. Its user is anonymous until a successful claim names it.
type Session struct {
	*message.User
}

// LoggedIn reports whether this session has claimed a username.
func (s *Session) LoggedIn() bool {
	return s.Name() != ""
}
