package applescript

import "strings"

// Two quoting contexts stack up on every generated script: the AppleScript
// string literal a caller-supplied value lands in, and the shell single-quoted
// argument the whole script is wrapped in for osascript. Caller input must
// never reach a script outside EscapeStringLiteral.

// EscapeStringLiteral makes s safe inside an AppleScript double-quoted string.
// Backslashes are doubled before quotes are escaped; the other order would
// re-escape the backslash introduced for the quote.
func EscapeStringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// EscapeShellSingleQuote makes s safe inside a shell single-quoted argument.
// Each quote closes the current segment, inserts an escaped literal quote,
// and reopens quoting.
func EscapeShellSingleQuote(s string) string {
	return strings.ReplaceAll(s, `'`, `'\''`)
}

// Command returns the shell command line that runs script through osascript.
func Command(script string) string {
	return "osascript -e '" + EscapeShellSingleQuote(script) + "'"
}
