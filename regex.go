// Package rxmatch provides a small regular-expression engine built along
// the classical textbook pipeline: lex, parse to an AST, compile to an
// ε-NFA by Thompson's construction, eliminate ε-transitions, determinize by
// subset construction, and scan a DFA against input text.
//
// The supported pattern surface is deliberately minimal: literal
// characters, concatenation, alternation ('|'), Kleene star ('*'),
// parenthesised grouping, and a backtick escape for the metacharacters
// themselves. There is no support for character classes, anchors,
// repetition counts, backreferences, capture extraction, or partial/search
// matching — Match decides whole-string membership only.
//
// Basic usage:
//
//	ok, err := rxmatch.Match("aaab", "a*b|c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ok) // true
//
// Compiling once and matching repeatedly:
//
//	p, err := rxmatch.Compile(`(a|b)*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Match("abba") // true
//	p.Match("abc")  // false
package rxmatch

import (
	"fmt"

	"github.com/youssefhj/rxmatch/dfa"
	"github.com/youssefhj/rxmatch/match"
)

// Pattern is a compiled pattern, safe for concurrent Match calls: it is
// immutable after Compile returns, and compilation itself never shares
// state across calls (each Compile gets its own state-id counter, internal
// to the nfa package).
type Pattern struct {
	automaton *dfa.Automaton
	source    string
}

// Compile lexes, parses, and builds the full automaton pipeline for
// pattern, returning a reusable Pattern. The error, if any, is a
// *CompileError wrapping the stage that failed.
func Compile(pattern string) (*Pattern, error) {
	automaton, err := match.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return &Pattern{automaton: automaton, source: pattern}, nil
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known to be valid at compile time (e.g. package-level vars).
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("rxmatch: MustCompile(%q): %v", pattern, err))
	}
	return p
}

// Match decides whole-string membership of text in the pattern's language.
func (p *Pattern) Match(text string) bool {
	return match.Scan(p.automaton, text)
}

// String returns the source pattern the Pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Match compiles pattern and decides whole-string membership of text in one
// call. For repeated matching against the same pattern, prefer Compile.
func Match(text, pattern string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(text), nil
}

// CompileError unifies lexer and parser failures behind one error type, so
// callers of the top-level Match/Compile functions only need to handle one
// kind of error regardless of which pipeline stage rejected the pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rxmatch: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying *lexer.LexError or *parser.ParseError for
// errors.Is/errors.As.
func (e *CompileError) Unwrap() error {
	return e.Err
}
