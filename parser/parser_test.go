package parser

import (
	"errors"
	"testing"

	"github.com/youssefhj/rxmatch/ast"
	"github.com/youssefhj/rxmatch/lexer"
)

func mustTokenize(t *testing.T, pattern string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Tokenize(pattern)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", pattern, err)
	}
	return toks
}

func TestParse_AssociativityExamples(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"ab*c", "Concat(Literal('a'), Concat(Star(Literal('b')), Literal('c')))"},
		{"a|bc", "Alternation(Literal('a'), Concat(Literal('b'), Literal('c')))"},
		{"a*b|c", "Alternation(Concat(Star(Literal('a')), Literal('b')), Literal('c'))"},
		{"(a|b)*", "Star(Alternation(Literal('a'), Literal('b')))"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks := mustTokenize(t, tt.pattern)
			got, err := Parse(toks)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.pattern, err)
			}
			if s := render(got); s != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, s, tt.want)
			}
		})
	}
}

// render gives a deterministic, fully-parenthesized textual form of an AST
// for exact structural comparison in tests.
func render(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Literal:
		return "Literal('" + string(v.Ch) + "')"
	case *ast.Concat:
		return "Concat(" + render(v.Left) + ", " + render(v.Right) + ")"
	case *ast.Alternation:
		return "Alternation(" + render(v.Left) + ", " + render(v.Right) + ")"
	case *ast.Star:
		return "Star(" + render(v.Inner) + ")"
	default:
		return "?"
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Parse(nil) = %v, want ErrEmptyInput", err)
	}
}

func TestParse_UnexpectedEnd(t *testing.T) {
	tests := []string{"(", "a|", "a*b|"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			toks := mustTokenize(t, pattern)
			_, err := Parse(toks)
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got nil", pattern)
			}
			if !errors.Is(err, ErrUnexpectedEnd) && !errors.Is(err, ErrUnmatchedParen) {
				t.Errorf("Parse(%q) = %v, want ErrUnexpectedEnd or ErrUnmatchedParen", pattern, err)
			}
		})
	}
}

func TestParse_UnexpectedToken(t *testing.T) {
	tests := []struct {
		pattern string
		wantPos int
	}{
		{"|a", 1},
		{"*a", 1},
		{")", 1},
		{"a)", 2},
		{"a**", 3},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks := mustTokenize(t, tt.pattern)
			_, err := Parse(toks)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) = %v, want *ParseError", tt.pattern, err)
			}
			if !errors.Is(err, ErrUnexpectedToken) {
				t.Fatalf("Parse(%q) err kind = %v, want ErrUnexpectedToken", tt.pattern, pe.Err)
			}
			if pe.Pos != tt.wantPos {
				t.Errorf("Parse(%q) pos = %d, want %d", tt.pattern, pe.Pos, tt.wantPos)
			}
		})
	}
}

func TestParse_UnmatchedParen(t *testing.T) {
	tests := []struct {
		pattern string
		wantPos int
	}{
		{"(a", 1},
		{"(a|b", 1},
		{"a(b", 2},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			toks := mustTokenize(t, tt.pattern)
			_, err := Parse(toks)
			if !errors.Is(err, ErrUnmatchedParen) {
				t.Fatalf("Parse(%q) = %v, want ErrUnmatchedParen", tt.pattern, err)
			}
			var pe *ParseError
			errors.As(err, &pe)
			if pe.Pos != tt.wantPos {
				t.Errorf("Parse(%q) pos = %d, want %d", tt.pattern, pe.Pos, tt.wantPos)
			}
		})
	}
}

func TestParse_NestedGroups(t *testing.T) {
	toks := mustTokenize(t, "((a|b)c)*")
	got, err := Parse(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Star(Concat(Alternation(Literal('a'), Literal('b')), Literal('c')))"
	if s := render(got); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
}

func TestParse_SingleLiteral(t *testing.T) {
	toks := mustTokenize(t, "a")
	got, err := Parse(toks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit, ok := got.(*ast.Literal); !ok || lit.Ch != 'a' {
		t.Errorf("got %v, want Literal('a')", got)
	}
}
