// Package match wires the pipeline stages together: lex, parse, build the
// Thompson ε-NFA, eliminate ε-transitions, run subset construction, and
// scan the resulting DFA against input text.
package match

import (
	"github.com/youssefhj/rxmatch/dfa"
	"github.com/youssefhj/rxmatch/lexer"
	"github.com/youssefhj/rxmatch/nfa"
	"github.com/youssefhj/rxmatch/parser"
)

// Compile runs the full lex → parse → build → eliminate → determinize
// pipeline and returns the resulting DFA. The returned error, if non-nil,
// is either a *lexer.LexError or a *parser.ParseError.
func Compile(pattern string) (*dfa.Automaton, error) {
	tokens, err := lexer.Tokenize(pattern)
	if err != nil {
		return nil, err
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	epsNFA := nfa.Build(tree)
	plainNFA := nfa.EliminateEpsilon(epsNFA)
	return dfa.Determinize(plainNFA), nil
}

// Scan performs the whole-string membership test against an already
// compiled DFA.
func Scan(d *dfa.Automaton, text string) bool {
	return d.Match(text)
}
