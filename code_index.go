package morse

// codeIndexStats reports density metrics for the reverse code index.
type codeIndexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s codeIndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// codeIndex is the internal backend abstraction for the code → letter
// direction of a table. Positions returned before Freeze are temporary and
// have to be resolved to final states afterwards.
type codeIndex interface {
	EncodeKey(code Code) ([]uint16, bool)
	AllocPositionForCode(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Lookup(key []uint16) int
	Stats() codeIndexStats
}
