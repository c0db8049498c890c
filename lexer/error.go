package lexer

import (
	"errors"
	"fmt"
)

// Sentinel errors that LexError wraps, for errors.Is-based recovery.
var (
	// ErrDanglingEscape indicates a backtick was the final character of
	// the pattern, with no character left to escape.
	ErrDanglingEscape = errors.New("dangling escape")

	// ErrUnescapableCharacter indicates a backtick was followed by a
	// character that is not a recognised metacharacter.
	ErrUnescapableCharacter = errors.New("unescapable character")
)

// LexError reports a tokenization failure at a source rune position
// (0-based, into the pattern string, not the token stream).
type LexError struct {
	Err    error
	Pos    int
	Escape rune // the offending escaped character, for ErrUnescapableCharacter
}

// Error implements the error interface.
func (e *LexError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnescapableCharacter):
		return fmt.Sprintf("lex: cannot escape %q at position %d", e.Escape, e.Pos)
	default:
		return fmt.Sprintf("lex: %v at position %d", e.Err, e.Pos)
	}
}

// Unwrap exposes the underlying sentinel for errors.Is/errors.As.
func (e *LexError) Unwrap() error {
	return e.Err
}
