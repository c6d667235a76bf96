package iterm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/glorko/itermlink/internal/applescript"
)

// writeCharScript writes a single character by code into a session with the
// newline suppressed, addressing either the session matching sessionID or the
// foreground session of the foreground window.
func writeCharScript(sessionID string, code int) string {
	if sessionID == "" {
		return fmt.Sprintf(`tell application "iTerm2"
	tell current session of current window
		write text (character id %d) newline NO
	end tell
end tell`, code)
	}
	return fmt.Sprintf(`tell application "iTerm2"
%s
	tell targetSession
		write text (character id %d) newline NO
	end tell
end tell`, sessionLookup(applescript.EscapeStringLiteral(sessionID)), code)
}

// SendControl resolves key, writes the resulting character into the target
// session, and returns the resolved Key for the caller's confirmation
// message. Resolution failures reject the input before any script exists;
// execution failures wrap ErrKeySend and are not retried.
func (c *Client) SendControl(ctx context.Context, sessionID, key string) (Key, error) {
	k, err := ResolveKey(key)
	if err != nil {
		return Key{}, err
	}
	if _, err := c.runner.Run(ctx, applescript.Command(writeCharScript(sessionID, k.Code))); err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrKeySend, err)
	}
	c.log.WithFields(logrus.Fields{"key": k.Name, "code": k.Code}).Debug("sent control character")
	return k, nil
}

// WriteCommand writes the literal command text into the target session,
// followed by a carriage return to submit it. The command and any session id
// are escaped for the script-literal context before interpolation.
func (c *Client) WriteCommand(ctx context.Context, sessionID, command string) error {
	body := fmt.Sprintf(`		write text "%s" newline NO
		write text (character id 13) newline NO`, applescript.EscapeStringLiteral(command))

	var script string
	if sessionID == "" {
		script = fmt.Sprintf(`tell application "iTerm2"
	tell current session of current window
%s
	end tell
end tell`, body)
	} else {
		script = fmt.Sprintf(`tell application "iTerm2"
%s
	tell targetSession
%s
	end tell
end tell`, sessionLookup(applescript.EscapeStringLiteral(sessionID)), body)
	}

	if _, err := c.runner.Run(ctx, applescript.Command(script)); err != nil {
		return fmt.Errorf("write command failed: %w", err)
	}
	return nil
}
