package iterm

import "strings"

// KeyKind tags how an input string resolved.
type KeyKind int

const (
	// KeySpecial is a named key from the table below, or the literal "]".
	KeySpecial KeyKind = iota
	// KeyControlLetter is a single letter A-Z resolved to its control code.
	KeyControlLetter
)

// Key is the resolved target of a send-control request: the character code
// written into the session plus the name echoed back to the caller.
type Key struct {
	Kind KeyKind
	Name string
	Code int
}

var specialKeys = map[string]int{
	"ENTER":     13,
	"RETURN":    13,
	"CR":        13,
	"LF":        10,
	"NEWLINE":   10,
	"ESC":       27,
	"ESCAPE":    27,
	"TAB":       9,
	"BACKSPACE": 127,
	"DEL":       127,
	"DELETE":    127,
	"BS":        8,
	"SPACE":     32,
}

// ResolveKey maps an input string to a Key. Resolution order: the literal "]"
// (group separator, code 29), then the special-key table (case-insensitive),
// then single letters A-Z as control codes (A=1 ... Z=26). Anything else is
// an InvalidKeyError; no script is built for a rejected input.
func ResolveKey(input string) (Key, error) {
	if input == "]" {
		return Key{Kind: KeySpecial, Name: "]", Code: 29}, nil
	}
	upper := strings.ToUpper(input)
	if code, ok := specialKeys[upper]; ok {
		return Key{Kind: KeySpecial, Name: upper, Code: code}, nil
	}
	if len(upper) == 1 && upper[0] >= 'A' && upper[0] <= 'Z' {
		return Key{Kind: KeyControlLetter, Name: "Ctrl-" + upper, Code: int(upper[0]-'A') + 1}, nil
	}
	return Key{}, &InvalidKeyError{Input: input}
}
