package iterm

import (
	"context"
	"fmt"
	"strings"

	"github.com/glorko/itermlink/internal/applescript"
)

// retrieveBuffer returns the full content of the target session, trimmed of
// leading and trailing whitespace only; internal structure comes back
// verbatim. A host-raised lookup miss is surfaced as SessionNotFoundError.
func (c *Client) retrieveBuffer(ctx context.Context, sessionID string) (string, error) {
	var script string
	if sessionID == "" {
		script = `tell application "iTerm2"
	return contents of current session of current window
end tell`
	} else {
		script = fmt.Sprintf(`tell application "iTerm2"
%s
	return contents of targetSession
end tell`, sessionLookup(applescript.EscapeStringLiteral(sessionID)))
	}

	out, err := c.runner.Run(ctx, applescript.Command(script))
	if err != nil {
		if sessionID != "" && strings.Contains(err.Error(), "session not found") {
			return "", &SessionNotFoundError{ID: sessionID}
		}
		return "", fmt.Errorf("read output failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// ReadOutput returns the target session's buffer, trimmed to the trailing
// lines lines when lines > 0. Asking for more lines than exist, or for zero,
// returns the whole buffer.
func (c *Client) ReadOutput(ctx context.Context, sessionID string, lines int) (string, error) {
	buf, err := c.retrieveBuffer(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return lastLines(buf, lines), nil
}
