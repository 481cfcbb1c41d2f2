package morse

import "fmt"

const absentLetter = 0
const initialLetterStoreSlots = 2 // include slot 0 + root slot

// letterStore keeps letters directly indexed by code index position.
// Letters are A–Z, so one byte per slot suffices.
type letterStore struct {
	letters []byte // will grow with demand
}

func newLetterStore() *letterStore {
	return &letterStore{
		letters: make([]byte, initialLetterStoreSlots),
	}
}

func (s *letterStore) ensure(pos int) {
	if pos < len(s.letters) {
		return
	}
	grow := pos + 1 - len(s.letters)
	s.letters = append(s.letters, make([]byte, grow)...)
}

// Put stores a letter at position pos. Overwriting an occupied slot is an
// error, as two letters would share one code.
func (s *letterStore) Put(pos int, letter rune) error {
	if pos <= 0 {
		return fmt.Errorf("invalid code index position: %d", pos)
	}
	if !isLetter(letter) {
		return fmt.Errorf("not a letter: %q", letter)
	}
	s.ensure(pos)
	if prev := s.letters[pos]; prev != absentLetter {
		return fmt.Errorf("position %d already holds letter %q", pos, rune(prev))
	}
	s.letters[pos] = byte(letter)
	return nil
}

// Letter returns the letter stored at position pos.
func (s *letterStore) Letter(pos int) (rune, bool) {
	if pos <= 0 || pos >= len(s.letters) {
		return 0, false
	}
	l := s.letters[pos]
	if l == absentLetter {
		return 0, false
	}
	return rune(l), true
}

// Len returns the number of stored letters.
func (s *letterStore) Len() int {
	n := 0
	for _, l := range s.letters {
		if l != absentLetter {
			n++
		}
	}
	return n
}
