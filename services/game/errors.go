package game

import (
	"errors"
	"fmt"
)

// Kind is the machine-distinguishable class of a domain error. Controllers
// translate kinds to HTTP statuses; the message is for humans.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
	KindRoomFull   Kind = "room_full"
	KindNotStarted Kind = "not_started"

	// KindSnapshot marks a failed snapshot write. The in-memory mutation
	// has already been applied when this is returned.
	KindSnapshot Kind = "snapshot"
)

// Error is the domain error returned by every game service operation
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of a game error, or "" for foreign errors
func KindOf(err error) Kind {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Kind
	}
	return ""
}
