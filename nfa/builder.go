package nfa

import (
	"fmt"

	"github.com/youssefhj/rxmatch/ast"
	"github.com/youssefhj/rxmatch/internal/idgen"
)

// Builder constructs an ε-NFA from an ast.Node using Thompson's
// construction. A Builder is single-use: its counter is a value, never a
// package-level singleton, so that concurrent compilations never collide.
type Builder struct {
	counter  idgen.Counter
	alphabet map[rune]struct{}
	trans    map[StateID]map[rune][]StateID
}

// NewBuilder returns a ready-to-use Builder with a fresh id counter.
func NewBuilder() *Builder {
	return &Builder{
		alphabet: make(map[rune]struct{}),
		trans:    make(map[StateID]map[rune][]StateID),
	}
}

// Build runs Thompson's construction over root and returns the resulting
// ε-NFA. Every call allocates entirely fresh state ids; sub-automata never
// share state with a different Build call.
func Build(root ast.Node) *Automaton {
	b := NewBuilder()
	start, accept := b.build(root)

	a := &Automaton{
		Alphabet:  b.alphabet,
		NumStates: b.counter.Len(),
		Start:     start,
		Accept:    map[StateID]struct{}{accept: {}},
		Trans:     b.trans,
	}
	if len(a.Accept) != 1 {
		panic("nfa: Thompson construction invariant violated: expected exactly one accept state")
	}
	return a
}

func (b *Builder) newState() StateID {
	return StateID(b.counter.Next())
}

func (b *Builder) addEpsilon(from, to StateID) {
	b.addTrans(from, Epsilon, to)
}

func (b *Builder) addTrans(from StateID, symbol rune, to StateID) {
	if b.trans[from] == nil {
		b.trans[from] = make(map[rune][]StateID)
	}
	b.trans[from][symbol] = append(b.trans[from][symbol], to)
}

// build recursively applies the four Thompson construction rules, returning
// the start and accept state of the sub-automaton for n.
func (b *Builder) build(n ast.Node) (start, accept StateID) {
	switch v := n.(type) {
	case *ast.Literal:
		s := b.newState()
		f := b.newState()
		b.alphabet[v.Ch] = struct{}{}
		b.addTrans(s, v.Ch, f)
		return s, f

	case *ast.Concat:
		ls, la := b.build(v.Left)
		rs, ra := b.build(v.Right)
		b.addEpsilon(la, rs)
		return ls, ra

	case *ast.Alternation:
		ls, la := b.build(v.Left)
		rs, ra := b.build(v.Right)
		s := b.newState()
		f := b.newState()
		b.addEpsilon(s, ls)
		b.addEpsilon(s, rs)
		b.addEpsilon(la, f)
		b.addEpsilon(ra, f)
		return s, f

	case *ast.Star:
		is, ia := b.build(v.Inner)
		s := b.newState()
		f := b.newState()
		b.addEpsilon(s, is)
		b.addEpsilon(s, f)
		b.addEpsilon(ia, is)
		b.addEpsilon(ia, f)
		return s, f

	default:
		panic(fmt.Sprintf("nfa: unsupported ast node type %T", n))
	}
}
