package iterm

import (
	"errors"
	"testing"
)

func TestResolveKeySpecial(t *testing.T) {
	tests := []struct {
		input string
		code  int
	}{
		{"ENTER", 13},
		{"enter", 13},
		{"Enter", 13},
		{"RETURN", 13},
		{"cr", 13},
		{"LF", 10},
		{"newline", 10},
		{"ESC", 27},
		{"escape", 27},
		{"TAB", 9},
		{"BACKSPACE", 127},
		{"del", 127},
		{"delete", 127},
		{"BS", 8},
		{"space", 32},
		{"]", 29},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ResolveKey(tt.input)
			if err != nil {
				t.Fatalf("ResolveKey(%q) returned error: %v", tt.input, err)
			}
			if k.Code != tt.code {
				t.Errorf("ResolveKey(%q).Code = %d, want %d", tt.input, k.Code, tt.code)
			}
			if k.Kind != KeySpecial {
				t.Errorf("ResolveKey(%q).Kind = %v, want KeySpecial", tt.input, k.Kind)
			}
		})
	}
}

func TestResolveKeyControlLetters(t *testing.T) {
	tests := []struct {
		input string
		code  int
	}{
		{"a", 1},
		{"A", 1},
		{"c", 3},
		{"C", 3},
		{"m", 13},
		{"z", 26},
		{"Z", 26},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ResolveKey(tt.input)
			if err != nil {
				t.Fatalf("ResolveKey(%q) returned error: %v", tt.input, err)
			}
			if k.Code != tt.code {
				t.Errorf("ResolveKey(%q).Code = %d, want %d", tt.input, k.Code, tt.code)
			}
			if k.Kind != KeyControlLetter {
				t.Errorf("ResolveKey(%q).Kind = %v, want KeyControlLetter", tt.input, k.Kind)
			}
		})
	}
}

func TestResolveKeyInvalid(t *testing.T) {
	for _, input := range []string{"", "123", "AB", "F1", "ctrl-c", "?", "é"} {
		t.Run(input, func(t *testing.T) {
			_, err := ResolveKey(input)
			var invalid *InvalidKeyError
			if !errors.As(err, &invalid) {
				t.Fatalf("ResolveKey(%q) error = %v, want InvalidKeyError", input, err)
			}
			if invalid.Input != input {
				t.Errorf("InvalidKeyError.Input = %q, want %q", invalid.Input, input)
			}
		})
	}
}
