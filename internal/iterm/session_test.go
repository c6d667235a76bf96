package iterm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSessionsRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
	}{
		{"empty", nil},
		{"single", []Session{
			{ID: "w0t0p0", Name: "zsh", WindowName: "win 1", WindowID: 4, TabIndex: 0,
				TTY: "/dev/ttys001", Profile: "Default", IsCurrent: true, IsProcessing: false,
				Preview: "$ ls\nREADME.md"},
		}},
		{"many", []Session{
			{ID: "w0t0p0", Name: "zsh", WindowName: "win 1", WindowID: 4, TabIndex: 0,
				TTY: "/dev/ttys001", Profile: "Default", IsCurrent: true, Preview: "$"},
			{ID: "w0t1p0", Name: "vim", WindowName: "win 1", WindowID: 4, TabIndex: 1,
				TTY: "/dev/ttys002", Profile: "Default", IsProcessing: true, Preview: "~"},
			{ID: "w1t0p0", Name: "ssh", WindowName: "remote", WindowID: 7, TabIndex: 0,
				TTY: "/dev/ttys005", Profile: "Hotkey", Preview: "last login"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := decodeSessions(encodeSessions(tt.sessions))
			require.Len(t, decoded, len(tt.sessions))
			for i := range tt.sessions {
				assert.Equal(t, tt.sessions[i], decoded[i])
			}
		})
	}
}

func TestDecodeSessionsPreviewTrimmedToFiveLines(t *testing.T) {
	in := Session{ID: "s1", Name: "zsh", WindowName: "w", WindowID: 1, TabIndex: 0,
		TTY: "/dev/ttys001", Profile: "Default",
		Preview: "l1\nl2\nl3\nl4\nl5\nl6\nl7"}

	decoded := decodeSessions(encodeSessions([]Session{in}))
	require.Len(t, decoded, 1)
	assert.Equal(t, "l3\nl4\nl5\nl6\nl7", decoded[0].Preview)
}

func TestDecodeSessionsDropsMalformedBlocks(t *testing.T) {
	good := encodeSessions([]Session{
		{ID: "s1", Name: "zsh", WindowName: "w", WindowID: 1, TabIndex: 0,
			TTY: "/dev/ttys001", Profile: "Default", Preview: "$"},
	})
	// Too few fields: dropped without affecting the sibling record.
	malformed := strings.Join([]string{"s2", "zsh", "w"}, fieldSep) + recordSep

	decoded := decodeSessions(malformed + good)
	require.Len(t, decoded, 1)
	assert.Equal(t, "s1", decoded[0].ID)
}

func TestDecodeSessionsPreviewWithStraySeparator(t *testing.T) {
	// A field separator inside the buffer must fold back into the preview
	// instead of shifting fields.
	raw := strings.Join([]string{
		"s1", "zsh", "w", "3", "1", "/dev/ttys001", "Default", "false", "false",
		"before", "after",
	}, fieldSep) + recordSep

	decoded := decodeSessions(raw)
	require.Len(t, decoded, 1)
	assert.Equal(t, "before"+fieldSep+"after", decoded[0].Preview)
}

func TestListSessionsRunnerFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("osascript: iTerm2 got an error")}
	client := NewClient(runner, nil)

	_, err := client.ListSessions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionList)
	assert.Contains(t, err.Error(), "iTerm2 got an error")
}

func TestGetSessionNotFound(t *testing.T) {
	runner := &fakeRunner{stdout: encodeSessions([]Session{
		{ID: "s1", Name: "a", WindowName: "w", WindowID: 1, TabIndex: 0,
			TTY: "/dev/ttys001", Profile: "Default"},
		{ID: "s2", Name: "b", WindowName: "w", WindowID: 1, TabIndex: 1,
			TTY: "/dev/ttys002", Profile: "Default"},
	})}
	client := NewClient(runner, nil)

	_, err := client.GetSession(context.Background(), "missing-id")
	var notFound *SessionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing-id", notFound.ID)
	assert.Contains(t, err.Error(), "s1")
	assert.Contains(t, err.Error(), "s2")
}

func TestGetSessionFound(t *testing.T) {
	runner := &fakeRunner{stdout: encodeSessions([]Session{
		{ID: "s1", Name: "a", WindowName: "w", WindowID: 1, TabIndex: 0,
			TTY: "/dev/ttys001", Profile: "Default"},
		{ID: "s2", Name: "b", WindowName: "w", WindowID: 1, TabIndex: 1,
			TTY: "/dev/ttys002", Profile: "Default"},
	})}
	client := NewClient(runner, nil)

	s, err := client.GetSession(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, "b", s.Name)
	assert.Equal(t, 1, s.TabIndex)
}
