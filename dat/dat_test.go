package dat

import "testing"

// tiny trie: root 1 --(1)--> 3 --(2)--> 5
func tinyDAT() *DAT {
	return &DAT{
		Root:  1,
		Sigma: 2,
		Base:  []int32{0, 2, 0, 3, 0, 0},
		Check: []int32{0, 0, 0, 1, 0, 3},
	}
}

func TestTransition(t *testing.T) {
	d := tinyDAT()
	if s, ok := d.Transition(1, 1); !ok || s != 3 {
		t.Fatalf("expected transition 1 -1-> 3, got %d, %v", s, ok)
	}
	if _, ok := d.Transition(1, 2); ok {
		t.Fatalf("expected no transition 1 -2->")
	}
	if _, ok := d.Transition(1, 0); ok {
		t.Fatalf("expected symbol 0 to be rejected")
	}
	if _, ok := d.Transition(1, 3); ok {
		t.Fatalf("expected symbol beyond sigma to be rejected")
	}
	if _, ok := d.Transition(99, 1); ok {
		t.Fatalf("expected unknown state to be rejected")
	}
}

func TestWalk(t *testing.T) {
	d := tinyDAT()
	if s := d.Walk([]uint16{1, 2}); s != 5 {
		t.Fatalf("expected walk to end in state 5, got %d", s)
	}
	if s := d.Walk([]uint16{2}); s != 0 {
		t.Fatalf("expected walk to fail, got %d", s)
	}
	if s := d.Walk(nil); s != d.Root {
		t.Fatalf("expected empty walk to stay at root, got %d", s)
	}
	if d.NStates() != 6 {
		t.Fatalf("expected 6 states, got %d", d.NStates())
	}
}
