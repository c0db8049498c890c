package nfa

import "github.com/youssefhj/rxmatch/internal/stateset"

// ClosureCache computes ε-closures over a fixed Automaton, memoizing per
// state so repeated queries for the same state never re-traverse.
type ClosureCache struct {
	automaton *Automaton
	memo      map[StateID]*stateset.Set
}

// NewClosureCache returns a cache bound to a.
func NewClosureCache(a *Automaton) *ClosureCache {
	return &ClosureCache{
		automaton: a,
		memo:      make(map[StateID]*stateset.Set),
	}
}

// Closure returns E(q): q plus everything reachable from it by zero or more
// ε-transitions. The returned set must not be mutated; it is shared via the
// cache. Tolerates ε-cycles by tracking visited states during traversal.
func (c *ClosureCache) Closure(q StateID) *stateset.Set {
	if cached, ok := c.memo[q]; ok {
		return cached
	}

	result := stateset.New(uint32(c.automaton.NumStates))
	visited := make(map[StateID]bool)

	var visit func(StateID)
	visit = func(s StateID) {
		if visited[s] {
			return
		}
		visited[s] = true
		result.Insert(uint32(s))
		for _, next := range c.automaton.Trans[s][Epsilon] {
			visit(next)
		}
	}
	visit(q)

	c.memo[q] = result
	return result
}

// ClosureOfSet returns E(Q) = ⋃ E(q) for q ∈ qs.
func (c *ClosureCache) ClosureOfSet(qs []StateID) *stateset.Set {
	union := stateset.New(uint32(c.automaton.NumStates))
	for _, q := range qs {
		for _, id := range c.Closure(q).Items() {
			union.Insert(id)
		}
	}
	return union
}

// EliminateEpsilon converts an ε-NFA into an equivalent NFA with no ε
// transitions. For every state q and every non-ε symbol c, the new
// outgoing set on c is the union of δ(q', c) over q' ∈ E(q). q is accepting
// in the result iff E(q) contains any originally-accepting state.
func EliminateEpsilon(a *Automaton) *Automaton {
	cache := NewClosureCache(a)

	newTrans := make(map[StateID]map[rune][]StateID)
	newAccept := make(map[StateID]struct{})

	for i := 0; i < a.NumStates; i++ {
		q := StateID(i)
		closure := cache.Closure(q)

		for _, id := range closure.Items() {
			if a.IsAccepting(StateID(id)) {
				newAccept[q] = struct{}{}
				break
			}
		}

		for symbol := range a.Alphabet {
			targets := stateset.New(uint32(a.NumStates))
			for _, id := range closure.Items() {
				for _, to := range a.Trans[StateID(id)][symbol] {
					targets.Insert(uint32(to))
				}
			}
			if targets.Len() == 0 {
				continue
			}
			if newTrans[q] == nil {
				newTrans[q] = make(map[rune][]StateID)
			}
			dest := make([]StateID, 0, targets.Len())
			for _, id := range targets.SortedIDs() {
				dest = append(dest, StateID(id))
			}
			newTrans[q][symbol] = dest
		}
	}

	return &Automaton{
		Alphabet:  a.Alphabet,
		NumStates: a.NumStates,
		Start:     a.Start,
		Accept:    newAccept,
		Trans:     newTrans,
	}
}
