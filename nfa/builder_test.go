package nfa

import (
	"testing"

	"github.com/youssefhj/rxmatch/ast"
)

func TestBuild_Literal(t *testing.T) {
	a := Build(&ast.Literal{Ch: 'a'})

	if a.NumStates != 2 {
		t.Fatalf("NumStates = %d, want 2", a.NumStates)
	}
	if len(a.Accept) != 1 {
		t.Fatalf("len(Accept) = %d, want 1", len(a.Accept))
	}
	if _, ok := a.Alphabet['a']; !ok {
		t.Fatal("alphabet missing 'a'")
	}
	targets := a.Trans[a.Start]['a']
	if len(targets) != 1 {
		t.Fatalf("Trans[Start]['a'] = %v, want one target", targets)
	}
	if !a.IsAccepting(targets[0]) {
		t.Error("literal's target state should be the accept state")
	}
}

func TestBuild_ExactlyOneStartAndAccept(t *testing.T) {
	patterns := []ast.Node{
		&ast.Concat{Left: &ast.Literal{Ch: 'a'}, Right: &ast.Literal{Ch: 'b'}},
		&ast.Alternation{Left: &ast.Literal{Ch: 'a'}, Right: &ast.Literal{Ch: 'b'}},
		&ast.Star{Inner: &ast.Literal{Ch: 'a'}},
	}
	for _, p := range patterns {
		a := Build(p)
		if len(a.Accept) != 1 {
			t.Errorf("%s: len(Accept) = %d, want 1", p, len(a.Accept))
		}
	}
}

func TestBuild_FreshIDsPerCompilation(t *testing.T) {
	a1 := Build(&ast.Literal{Ch: 'a'})
	a2 := Build(&ast.Literal{Ch: 'b'})

	if a1.Start != a2.Start {
		t.Errorf("independent compilations should both start numbering from 0: got %d and %d", a1.Start, a2.Start)
	}
}

func TestBuild_Star_AllowsEmptyMatch(t *testing.T) {
	a := Build(&ast.Star{Inner: &ast.Literal{Ch: 'a'}})
	cache := NewClosureCache(a)
	closure := cache.Closure(a.Start)

	accepting := false
	for _, id := range closure.Items() {
		if a.IsAccepting(StateID(id)) {
			accepting = true
		}
	}
	if !accepting {
		t.Error("Star's start-state closure should reach an accept state (zero repetitions)")
	}
}
