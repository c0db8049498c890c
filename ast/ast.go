// Package ast defines the abstract syntax tree produced by the parser and
// consumed exactly once by the NFA builder.
package ast

import "fmt"

// Node is an AST node. It is implemented by Literal, Concat, Alternation,
// and Star; the set is closed (no other implementations are meaningful to
// the rest of the pipeline).
type Node interface {
	node()
	String() string
}

// Literal is a single input symbol.
type Literal struct {
	Ch rune
}

func (*Literal) node() {}

// String renders the node for diagnostics.
func (l *Literal) String() string {
	return fmt.Sprintf("Literal(%q)", l.Ch)
}

// Concat is left then right, both non-nil.
type Concat struct {
	Left, Right Node
}

func (*Concat) node() {}

// String renders the node for diagnostics.
func (c *Concat) String() string {
	return fmt.Sprintf("Concat(%s, %s)", c.Left, c.Right)
}

// Alternation accepts either branch, both non-nil.
type Alternation struct {
	Left, Right Node
}

func (*Alternation) node() {}

// String renders the node for diagnostics.
func (a *Alternation) String() string {
	return fmt.Sprintf("Alternation(%s, %s)", a.Left, a.Right)
}

// Star is zero or more repetitions of Inner, which is non-nil.
type Star struct {
	Inner Node
}

func (*Star) node() {}

// String renders the node for diagnostics.
func (s *Star) String() string {
	return fmt.Sprintf("Star(%s)", s.Inner)
}
