package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

func toolList() []tool {
	return []tool{
		{
			Name: "list_terminal_sessions",
			Description: "List every iTerm2 session across all windows and tabs, " +
				"with ids, names, tty, profile, busy state, and a short content preview.",
			InputSchema: inputSchema{Type: "object", Properties: map[string]property{}},
		},
		{
			Name: "write_to_terminal",
			Description: "Write a command into a terminal session and press return. " +
				"Targets the active session when session_id is omitted.",
			InputSchema: inputSchema{
				Type: "object",
				Properties: map[string]property{
					"command": {
						Type:        "string",
						Description: "The command text to run",
					},
					"session_id": {
						Type:        "string",
						Description: "Session id from list_terminal_sessions (default: active session)",
					},
				},
				Required: []string{"command"},
			},
		},
		{
			Name: "read_terminal_output",
			Description: "Read the output buffer of a terminal session, optionally " +
				"trimmed to the last N lines.",
			InputSchema: inputSchema{
				Type: "object",
				Properties: map[string]property{
					"lines_of_output": {
						Type:        "number",
						Description: "Number of trailing lines to return (default: full buffer)",
					},
					"session_id": {
						Type:        "string",
						Description: "Session id from list_terminal_sessions (default: active session)",
					},
				},
			},
		},
		{
			Name: "send_control_character",
			Description: "Send a control character to a terminal session. Accepts a " +
				"letter (C for Ctrl-C), a key name (ENTER, TAB, ESC, BACKSPACE, ...), or ].",
			InputSchema: inputSchema{
				Type: "object",
				Properties: map[string]property{
					"letter": {
						Type:        "string",
						Description: "The key to send",
					},
					"session_id": {
						Type:        "string",
						Description: "Session id from list_terminal_sessions (default: active session)",
					},
				},
				Required: []string{"letter"},
			},
		},
		{
			Name:        "create_terminal_window",
			Description: "Open a new iTerm2 window and return its session and window ids.",
			InputSchema: inputSchema{
				Type: "object",
				Properties: map[string]property{
					"profile": {
						Type:        "string",
						Description: "Profile name for the new window (default: the default profile)",
					},
				},
			},
		},
		{
			Name: "create_terminal_tab",
			Description: "Open a new tab in an iTerm2 window and return its session id, " +
				"window id, and tab index.",
			InputSchema: inputSchema{
				Type: "object",
				Properties: map[string]property{
					"window_id": {
						Type:        "number",
						Description: "Window id to create the tab in (default: current window)",
					},
					"profile": {
						Type:        "string",
						Description: "Profile name for the new tab (default: the default profile)",
					},
				},
			},
		},
	}
}

// callTool runs one tool invocation and renders its result as text. Failures
// come back with isError set and the core's message untouched.
func (s *Server) callTool(ctx context.Context, params callToolParams) (string, bool) {
	args := params.Arguments

	switch params.Name {
	case "list_terminal_sessions":
		sessions, err := s.client.ListSessions(ctx)
		if err != nil {
			return err.Error(), true
		}
		if len(sessions) == 0 {
			return "No sessions found. Is iTerm2 running?", true
		}
		data, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return err.Error(), true
		}
		return string(data), false

	case "write_to_terminal":
		command, ok := stringArg(args, "command")
		if !ok {
			return "command is required", true
		}
		if err := s.client.WriteCommand(ctx, optionalString(args, "session_id"), command); err != nil {
			return err.Error(), true
		}
		return fmt.Sprintf("Wrote command to terminal: %s", command), false

	case "read_terminal_output":
		lines := s.cfg.Read.DefaultLines
		if n, ok := numberArg(args, "lines_of_output"); ok {
			lines = n
		}
		out, err := s.client.ReadOutput(ctx, optionalString(args, "session_id"), lines)
		if err != nil {
			return err.Error(), true
		}
		return out, false

	case "send_control_character":
		letter, ok := stringArg(args, "letter")
		if !ok {
			return "letter is required", true
		}
		key, err := s.client.SendControl(ctx, optionalString(args, "session_id"), letter)
		if err != nil {
			return err.Error(), true
		}
		return fmt.Sprintf("Sent %s (code %d)", key.Name, key.Code), false

	case "create_terminal_window":
		res, err := s.client.CreateWindow(ctx, optionalString(args, "profile"))
		if err != nil {
			return err.Error(), true
		}
		return fmt.Sprintf("Created window %d with session %s", res.WindowID, res.SessionID), false

	case "create_terminal_tab":
		var windowID *int
		if n, ok := numberArg(args, "window_id"); ok {
			windowID = &n
		}
		res, err := s.client.CreateTab(ctx, windowID, optionalString(args, "profile"))
		if err != nil {
			return err.Error(), true
		}
		return fmt.Sprintf("Created tab %d in window %d with session %s", res.TabIndex, res.WindowID, res.SessionID), false

	default:
		return fmt.Sprintf("Unknown tool: %s", params.Name), true
	}
}

func stringArg(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func optionalString(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// numberArg handles the float64 that JSON numbers decode to, plus numeric
// strings, which some callers send.
func numberArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
