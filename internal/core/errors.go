package core

import "errors"

// Session errors. None of these are sent to clients; the transport only logs them.
var (
	ErrNotJoined      = errors.New("not joined")
	ErrAlreadyJoined  = errors.New("already joined")
	ErrStaleMember    = errors.New("member slot owned by another connection")
	ErrSessionClosed  = errors.New("session closed")
	ErrUnknownCommand = errors.New("unknown command")
)
