package morse

import (
	"sort"

	"github.com/npillmayer/morse/dat"
)

// Dense symbol IDs of the code alphabet. 0 is reserved for "not a symbol".
const (
	denseDot  uint16 = 1
	denseDash uint16 = 2
	sigma            = denseDash
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datIndex builds a mutable trie of codes and freezes it into a
// double-array trie. After Freeze, positions are DAT states.
type datIndex struct {
	frozen     bool
	root       *datBuildNode
	nextNodeID int
	tmpToState map[int]uint32
	compiled   *dat.DAT
}

func newDATIndex() *datIndex {
	return &datIndex{
		root:       &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID: 2,
		tmpToState: make(map[int]uint32),
		compiled: &dat.DAT{
			Root:  1,
			Sigma: sigma,
		},
	}
}

func denseSymbol(b byte) uint16 {
	switch b {
	case Dot:
		return denseDot
	case Dash:
		return denseDash
	}
	return 0
}

// EncodeKey maps a code to dense symbol IDs. It fails for empty codes and for
// codes containing anything but dots and dashes.
func (di *datIndex) EncodeKey(code Code) ([]uint16, bool) {
	if len(code) == 0 {
		return nil, false
	}
	key := make([]uint16, len(code))
	for i := 0; i < len(code); i++ {
		c := denseSymbol(code[i])
		if c == 0 {
			return nil, false
		}
		key[i] = c
	}
	return key, true
}

// AllocPositionForCode inserts key into the build trie. Not valid after Freeze.
func (di *datIndex) AllocPositionForCode(key []uint16) int {
	if len(key) == 0 {
		return 0
	}
	n := di.root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    di.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			di.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

// ResolvePosition maps a temporary build position to its DAT state.
// It returns 0 before Freeze or for unknown positions.
func (di *datIndex) ResolvePosition(pos int) int {
	if !di.frozen {
		return 0
	}
	return int(di.tmpToState[pos])
}

func (di *datIndex) Freeze() {
	if di.frozen {
		return
	}
	d := di.compiled
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	di.root.state = d.Root
	di.tmpToState[di.root.tmpID] = d.Root
	queue := []*datBuildNode{di.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			di.tmpToState[child.tmpID] = child.state
			queue = append(queue, child)
		}
	}
	di.root = nil
	di.frozen = true
}

// Lookup returns the state reached by key, or 0.
func (di *datIndex) Lookup(key []uint16) int {
	if len(key) == 0 {
		return 0
	}
	if !di.frozen {
		n := di.root
		for _, c := range key {
			if n = n.children[c]; n == nil {
				return 0
			}
		}
		return n.tmpID
	}
	return int(di.compiled.Walk(key))
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (di *datIndex) Stats() codeIndexStats {
	d := di.compiled
	stats := codeIndexStats{
		Backend:    "dat",
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(d.Root)
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
