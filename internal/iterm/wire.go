package iterm

import (
	"strconv"
	"strings"
)

// Private wire format between the generated AppleScript and this package.
// The markers only need to be distinctive enough that real session names and
// buffer content never contain them; encode (in the scripts) and decode (here)
// must use the identical constants, so they all live in this file.
const (
	fieldSep  = "<<FIELD>>"
	recordSep = "<<RECORD>>"
	pairSep   = "<<SEP>>"
)

const (
	previewMaxLines = 5
	previewMaxChars = 500
)

// decodeSessions parses the registry script's output. Blocks with fewer than
// nine fields are dropped rather than failing the whole list; a decode is
// best-effort and sibling records are unaffected. The first nine fields are
// positional, anything beyond them is re-joined as preview text in case the
// buffer itself contained separator-like content.
func decodeSessions(raw string) []Session {
	var sessions []Session
	for _, block := range strings.Split(strings.TrimSpace(raw), recordSep) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		fields := strings.Split(block, fieldSep)
		if len(fields) < 9 {
			continue
		}

		id := strings.TrimSpace(fields[0])
		if id == "" {
			continue
		}

		windowID, _ := strconv.Atoi(strings.TrimSpace(fields[3]))
		// The script emits the one-based tab position.
		tabPos, _ := strconv.Atoi(strings.TrimSpace(fields[4]))

		preview := ""
		if len(fields) > 9 {
			preview = strings.Join(fields[9:], fieldSep)
		}

		sessions = append(sessions, Session{
			ID:           id,
			Name:         fields[1],
			WindowName:   fields[2],
			WindowID:     windowID,
			TabIndex:     tabPos - 1,
			TTY:          fields[5],
			Profile:      fields[6],
			IsCurrent:    strings.TrimSpace(fields[7]) == "true",
			IsProcessing: strings.TrimSpace(fields[8]) == "true",
			Preview:      trimPreview(preview),
		})
	}
	return sessions
}

func trimPreview(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) > previewMaxLines {
		lines = lines[len(lines)-previewMaxLines:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// lastLines returns the trailing n lines of s, or all of s when n <= 0 or the
// buffer is shorter than n lines.
func lastLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
