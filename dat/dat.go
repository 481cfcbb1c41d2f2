package dat

// DAT is a frozen double-array trie over the Morse symbol alphabet.
// - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
// - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
// - c is a dense symbol ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Letters attached to terminal states are kept outside of the DAT, indexed
// by state.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || dense > d.Sigma {
		return 0, false
	}
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows a sequence of dense symbols from the root and returns the
// reached state, or 0 if the path leaves the trie.
func (d *DAT) Walk(key []uint16) uint32 {
	state := d.Root
	for _, c := range key {
		next, ok := d.Transition(state, c)
		if !ok {
			return 0
		}
		state = next
	}
	return state
}
