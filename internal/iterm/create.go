package iterm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/glorko/itermlink/internal/applescript"
)

// WindowResult identifies a freshly created window and its initial session.
type WindowResult struct {
	SessionID string `json:"session_id"`
	WindowID  int    `json:"window_id"`
}

// TabResult identifies a freshly created tab, its initial session, and the
// tab's zero-based position among its window's tabs at creation time.
type TabResult struct {
	SessionID string `json:"session_id"`
	WindowID  int    `json:"window_id"`
	TabIndex  int    `json:"tab_index"`
}

// profileClause renders the "with profile"/"with default profile" suffix for
// a create statement. The profile name is caller-supplied and escaped.
func profileClause(profile string) string {
	if profile == "" {
		return "default profile"
	}
	return fmt.Sprintf(`profile "%s"`, applescript.EscapeStringLiteral(profile))
}

// CreateWindow opens a new window under the named profile, or the host's
// default when profile is empty, and reads back the new session and window
// ids.
func (c *Client) CreateWindow(ctx context.Context, profile string) (WindowResult, error) {
	script := fmt.Sprintf(`tell application "iTerm2"
	set newWindow to (create window with %s)
	return (id of current session of newWindow) & "%s" & (id of newWindow)
end tell`, profileClause(profile), pairSep)

	out, err := c.runner.Run(ctx, applescript.Command(script))
	if err != nil {
		return WindowResult{}, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	parts := strings.Split(strings.TrimSpace(out), pairSep)
	if len(parts) < 2 {
		return WindowResult{}, fmt.Errorf("%w: unexpected result %q", ErrWindowCreate, strings.TrimSpace(out))
	}
	windowID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return WindowResult{}, fmt.Errorf("%w: bad window id %q", ErrWindowCreate, parts[1])
	}

	res := WindowResult{SessionID: strings.TrimSpace(parts[0]), WindowID: windowID}
	c.log.WithField("window_id", res.WindowID).Debug("created window")
	return res, nil
}

// CreateTab opens a new tab in the window with the given id, or the current
// window when windowID is nil. The new tab's index is computed by scanning
// the parent window's tabs for the tab whose current session matches the one
// just created; the scan happens inside the same script, so the index
// reflects the tree at creation time.
func (c *Client) CreateTab(ctx context.Context, windowID *int, profile string) (TabResult, error) {
	var prologue string
	if windowID != nil {
		prologue = fmt.Sprintf(`	set targetWindow to missing value
	repeat with w in windows
		if id of w is %[1]d then set targetWindow to w
	end repeat
	if targetWindow is missing value then error "window not found: %[1]d"`, *windowID)
	} else {
		prologue = "	set targetWindow to current window"
	}

	script := fmt.Sprintf(`tell application "iTerm2"
%s
	tell targetWindow
		set newTab to (create tab with %s)
	end tell
	set newId to id of current session of newTab
	set tabPos to 0
	set idx to -1
	repeat with t in tabs of targetWindow
		set tabPos to tabPos + 1
		if (id of current session of t) is newId then set idx to tabPos - 1
	end repeat
	return newId & "%[3]s" & (id of targetWindow) & "%[3]s" & idx
end tell`, prologue, profileClause(profile), pairSep)

	out, err := c.runner.Run(ctx, applescript.Command(script))
	if err != nil {
		return TabResult{}, fmt.Errorf("%w: %v", ErrTabCreate, err)
	}

	parts := strings.Split(strings.TrimSpace(out), pairSep)
	if len(parts) < 3 {
		return TabResult{}, fmt.Errorf("%w: unexpected result %q", ErrTabCreate, strings.TrimSpace(out))
	}
	wid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TabResult{}, fmt.Errorf("%w: bad window id %q", ErrTabCreate, parts[1])
	}
	idx, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return TabResult{}, fmt.Errorf("%w: bad tab index %q", ErrTabCreate, parts[2])
	}

	res := TabResult{SessionID: strings.TrimSpace(parts[0]), WindowID: wid, TabIndex: idx}
	c.log.WithFields(logrus.Fields{"window_id": res.WindowID, "tab_index": res.TabIndex}).Debug("created tab")
	return res, nil
}
