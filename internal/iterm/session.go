package iterm

import (
	"context"
	"fmt"

	"github.com/glorko/itermlink/internal/applescript"
)

// Session is a snapshot of one discovered terminal session. Records are built
// fresh on every registry query and superseded by the next one.
type Session struct {
	ID           string `json:"session_id"`
	Name         string `json:"name"`
	WindowName   string `json:"window_name"`
	WindowID     int    `json:"window_id"`
	TabIndex     int    `json:"tab_index"`
	TTY          string `json:"tty"`
	Profile      string `json:"profile"`
	IsCurrent    bool   `json:"is_current"`
	IsProcessing bool   `json:"is_processing"`
	Preview      string `json:"preview"`
}

// listScript walks every window, tab, and session and emits one
// separator-joined record per session. No caller-supplied strings enter this
// script, so nothing in the body needs escaping; only the outer shell quoting
// applies.
func listScript() string {
	return fmt.Sprintf(`tell application "iTerm2"
	set out to ""
	set currentId to ""
	try
		set currentId to id of current session of current window
	end try
	repeat with w in windows
		set winId to id of w
		set winName to name of w
		set tabPos to 0
		repeat with t in tabs of w
			set tabPos to tabPos + 1
			repeat with s in sessions of t
				set buf to ""
				try
					set buf to contents of s
				end try
				if length of buf > %[3]d then set buf to text -%[3]d thru -1 of buf
				set isCur to "false"
				if (id of s) is currentId then set isCur to "true"
				set isProc to "false"
				if is processing of s then set isProc to "true"
				set out to out & (id of s) & "%[1]s" & (name of s) & "%[1]s" & winName & "%[1]s" & winId & "%[1]s" & tabPos & "%[1]s" & (tty of s) & "%[1]s" & (profile name of s) & "%[1]s" & isCur & "%[1]s" & isProc & "%[1]s" & buf & "%[2]s"
			end repeat
		end repeat
	end repeat
	return out
end tell`, fieldSep, recordSep, previewMaxChars)
}

// ListSessions enumerates every session currently hosted by iTerm2. Malformed
// records are skipped, so a partial list can come back from a half-garbled
// script result.
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	out, err := c.runner.Run(ctx, applescript.Command(listScript()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionList, err)
	}
	sessions := decodeSessions(out)
	c.log.WithField("count", len(sessions)).Debug("listed sessions")
	return sessions, nil
}

// GetSession re-enumerates and returns the session with the given id. The
// not-found error names every id that was enumerable at that moment, since
// the caller's id may simply be stale.
func (c *Client) GetSession(ctx context.Context, id string) (Session, error) {
	sessions, err := c.ListSessions(ctx)
	if err != nil {
		return Session{}, err
	}
	known := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.ID == id {
			return s, nil
		}
		known = append(known, s.ID)
	}
	return Session{}, &SessionNotFoundError{ID: id, Known: known}
}
