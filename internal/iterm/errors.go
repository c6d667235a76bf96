package iterm

import (
	"errors"
	"fmt"
	"strings"
)

// Operation failures wrap one of these sentinels so callers can match with
// errors.Is while still seeing the underlying osascript message.
var (
	ErrSessionList  = errors.New("list sessions failed")
	ErrKeySend      = errors.New("send key failed")
	ErrWindowCreate = errors.New("create window failed")
	ErrTabCreate    = errors.New("create tab failed")
)

// SessionNotFoundError reports a target session id that matched nothing at
// lookup time. Known carries the ids that were enumerable at that moment.
type SessionNotFoundError struct {
	ID    string
	Known []string
}

func (e *SessionNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("session %q not found", e.ID)
	}
	return fmt.Sprintf("session %q not found (known sessions: %s)", e.ID, strings.Join(e.Known, ", "))
}

// InvalidKeyError reports a key name that is neither a known special key, the
// literal "]", nor a single letter A-Z.
type InvalidKeyError struct {
	Input string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("unrecognized key %q: expected a special key name (ENTER, TAB, ESC, BACKSPACE, SPACE, ...), \"]\", or a single letter A-Z", e.Input)
}
