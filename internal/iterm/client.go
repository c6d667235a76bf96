// Package iterm drives iTerm2 through its AppleScript interface. Every
// operation generates a script, runs it as a one-shot osascript subprocess,
// and decodes the textual result. The session tree is externally owned and
// mutable between calls, so nothing here is cached: a target id is re-resolved
// on every call and absence surfaces as a not-found error, never a crash.
package iterm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/glorko/itermlink/internal/applescript"
)

// Client exposes the bridge operations over a subprocess runner.
type Client struct {
	runner applescript.Runner
	log    *logrus.Entry
}

// NewClient creates a Client. A nil log falls back to the standard logger.
func NewClient(runner applescript.Runner, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{runner: runner, log: log}
}

// sessionLookup returns script lines that bind targetSession to the session
// with the given id, walking every window, tab, and session. The id must
// already be escaped for the string-literal context. A miss raises a script
// error so the failure carries through the subprocess exit.
func sessionLookup(escapedID string) string {
	return fmt.Sprintf(`	set targetSession to missing value
	repeat with w in windows
		repeat with t in tabs of w
			repeat with s in sessions of t
				if id of s is "%[1]s" then set targetSession to s
			end repeat
		end repeat
	end repeat
	if targetSession is missing value then error "session not found: %[1]s"`, escapedID)
}
