// Package nfa implements Thompson's construction from an ast.Node to an
// ε-NFA, and ε-elimination from an ε-NFA to a plain NFA.
package nfa

// StateID uniquely identifies an NFA state within one compilation. Ids are
// allocated monotonically by a Builder's private counter; no two states
// from the same compilation may collide. Each compilation has its own
// counter, so numbering restarts at 0 for every Build call.
type StateID uint32

// Epsilon is the distinguished non-symbol meaning "consume nothing". It is
// never equal to a valid input rune (valid runes are non-negative).
const Epsilon rune = -1

// Automaton is either ε-NFA shaped (Trans may key on Epsilon) or NFA shaped
// (no Epsilon keys), depending on which stage produced it. See
// Build and EliminateEpsilon.
type Automaton struct {
	// Alphabet holds every non-ε symbol that appears in the pattern.
	Alphabet map[rune]struct{}

	// NumStates is the number of states allocated; valid ids are
	// [0, NumStates).
	NumStates int

	// Start is the automaton's single start state. Thompson's construction
	// always yields exactly one, and EliminateEpsilon keeps it; subset
	// construction (package dfa) uses {Start} as its initial macro-state
	// without taking a further ε-closure.
	Start StateID

	// Accept is the set of accepting states. Immediately after Thompson
	// construction this is always a singleton; ε-elimination may grow it.
	Accept map[StateID]struct{}

	// Trans maps a state to its outgoing transitions, keyed by symbol.
	// Absence of a (state, symbol) key means "no transition"; it is not
	// equivalent to a key mapping to an empty slice.
	Trans map[StateID]map[rune][]StateID
}

// IsAccepting reports whether s is one of the automaton's accept states.
func (a *Automaton) IsAccepting(s StateID) bool {
	_, ok := a.Accept[s]
	return ok
}
