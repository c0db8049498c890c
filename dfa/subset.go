package dfa

import (
	"fmt"
	"strings"

	"github.com/youssefhj/rxmatch/internal/stateset"
	"github.com/youssefhj/rxmatch/nfa"
)

// macroKey builds a canonical string key from an ascending-sorted id slice,
// so that two macro-states with identical membership collide in the
// discovery map regardless of the order their members were found in.
func macroKey(sortedIDs []uint32) string {
	var b strings.Builder
	for i, id := range sortedIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	return b.String()
}

// Determinize runs subset construction over a plain (ε-free) NFA, producing
// a DFA with renumbered states. n must already have had its ε transitions
// eliminated (nfa.EliminateEpsilon); the initial macro-state is simply
// {n.Start}.
func Determinize(n *nfa.Automaton) *Automaton {
	discovered := map[string]StateID{}
	var macros [][]uint32
	var queue [][]uint32

	startIDs := []uint32{uint32(n.Start)}
	startKey := macroKey(startIDs)
	discovered[startKey] = 0
	macros = append(macros, startIDs)
	queue = append(queue, startIDs)

	trans := make(map[StateID]map[rune]StateID)
	accept := make(map[StateID]struct{})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := discovered[macroKey(cur)]

		for _, id := range cur {
			if n.IsAccepting(nfa.StateID(id)) {
				accept[curID] = struct{}{}
				break
			}
		}

		for symbol := range n.Alphabet {
			target := stateset.New(uint32(n.NumStates))
			for _, id := range cur {
				for _, to := range n.Trans[nfa.StateID(id)][symbol] {
					target.Insert(uint32(to))
				}
			}
			if target.Len() == 0 {
				continue
			}

			sorted := target.SortedIDs()
			key := macroKey(sorted)
			targetID, ok := discovered[key]
			if !ok {
				targetID = StateID(len(macros))
				discovered[key] = targetID
				macros = append(macros, sorted)
				queue = append(queue, sorted)
			}

			if trans[curID] == nil {
				trans[curID] = make(map[rune]StateID)
			}
			if existing, ok := trans[curID][symbol]; ok && existing != targetID {
				panic(fmt.Sprintf("dfa: non-deterministic transition computed for state %d on %q", curID, symbol))
			}
			trans[curID][symbol] = targetID
		}
	}

	return &Automaton{
		Alphabet:  n.Alphabet,
		NumStates: len(macros),
		Start:     0,
		Accept:    accept,
		Trans:     trans,
	}
}
