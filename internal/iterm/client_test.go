package iterm

import (
	"context"
	"strconv"
	"strings"
)

// fakeRunner replaces the osascript subprocess in tests. It records every
// command line and plays back canned output or a canned failure.
type fakeRunner struct {
	stdout   string
	err      error
	commands []string
}

func (f *fakeRunner) Run(_ context.Context, commandLine string) (string, error) {
	f.commands = append(f.commands, commandLine)
	if f.err != nil {
		return "", f.err
	}
	return f.stdout, nil
}

func (f *fakeRunner) lastCommand() string {
	if len(f.commands) == 0 {
		return ""
	}
	return f.commands[len(f.commands)-1]
}

// encodeSessions renders records the way the registry script does, for
// round-trip tests against decodeSessions.
func encodeSessions(sessions []Session) string {
	var b strings.Builder
	for _, s := range sessions {
		fields := []string{
			s.ID,
			s.Name,
			s.WindowName,
			strconv.Itoa(s.WindowID),
			strconv.Itoa(s.TabIndex + 1),
			s.TTY,
			s.Profile,
			strconv.FormatBool(s.IsCurrent),
			strconv.FormatBool(s.IsProcessing),
			s.Preview,
		}
		b.WriteString(strings.Join(fields, fieldSep))
		b.WriteString(recordSep)
	}
	return b.String()
}
