package parser

import (
	"errors"
	"fmt"

	"github.com/youssefhj/rxmatch/lexer"
)

// Sentinel errors that ParseError wraps, for errors.Is-based recovery.
var (
	// ErrEmptyInput indicates the token stream had zero tokens.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnexpectedEnd indicates a rule expected a FACTOR but the token
	// stream was exhausted.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrUnexpectedToken indicates a grammar violation: a token appeared
	// where the grammar did not allow it.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnmatchedParen indicates a paren-balance violation.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")
)

// ParseError reports a parse failure at a 1-based token position.
type ParseError struct {
	Err   error
	Pos   int
	Value *lexer.Token // set for ErrUnexpectedToken
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedToken) && e.Value != nil:
		return fmt.Sprintf("parse: unexpected token %s at position %d", e.Value, e.Pos)
	case e.Pos > 0:
		return fmt.Sprintf("parse: %v at position %d", e.Err, e.Pos)
	default:
		return fmt.Sprintf("parse: %v", e.Err)
	}
}

// Unwrap exposes the underlying sentinel for errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
