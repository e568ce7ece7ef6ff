/*
Package chatserver is an implementation of a line-protocol chat relay:
clients connect over a stream transport, claim a unique username, and
exchange broadcast and direct messages.

tcpd and wsd subdirectories contain the transport pieces which know nothing
about chat.

chat subdirectory contains the chat-related pieces which know nothing about
sockets.

The Host type is the glue between the transport and chat pieces.
*/
package chatserver
