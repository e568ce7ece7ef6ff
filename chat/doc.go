/*
Package chat is a transport-agnostic implementation of the relay's session
and registry core: it tracks which connections exist, which username each
one has claimed, and routes broadcast and direct messages between them.

This package should not know anything about sockets. It consumes trimmed
input lines and emits typed protocol messages through each session's
outbound queue.
*/
package chat
