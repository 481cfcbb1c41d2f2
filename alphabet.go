package morse

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
)

// The two atomic symbols of Morse code.
const (
	Dot  = '.'
	Dash = '-'
)

// Code is the Morse code of one letter, a non-empty sequence of Dot and Dash.
type Code string

// Entry is one (letter, code) pair of an alphabet table.
type Entry struct {
	Letter rune
	Code   Code
}

// internationalEntries is the authoritative list for the standard table.
// Both directions of the table are built from it.
var internationalEntries = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."},
	{'E', "."}, {'F', "..-."}, {'G', "--."}, {'H', "...."},
	{'I', ".."}, {'J', ".---"}, {'K', "-.-"}, {'L', ".-.."},
	{'M', "--"}, {'N', "-."}, {'O', "---"}, {'P', ".--."},
	{'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"},
	{'Y', "-.--"}, {'Z', "--.."},
}

// Table is an immutable bidirectional mapping between letters A–Z and their
// Morse codes. A Table must not be modified after NewTable returns it, and it
// is safe for concurrent use.
type Table struct {
	codes      [26]Code     // forward direction, indexed by letter-'A'
	index      codeIndex    // reverse direction: code → position
	letters    *letterStore // letters by position
	prefixes   *trie.Trie   // codes by prefix, meta is the letter
	identifier string
}

var standard = mustNewTable("international", internationalEntries)

// Standard returns the table of International Morse code letters.
// It is built once at package initialization and shared by Encode and Decode.
func Standard() *Table {
	return standard
}

func mustNewTable(name string, entries []Entry) *Table {
	t, err := NewTable(name, entries)
	assert(err == nil, fmt.Sprintf("cannot build table %q: %v", name, err))
	return t
}

// NewTable builds a table from a list of (letter, code) pairs.
//
// Letters have to be upper case A–Z and codes have to consist of dots and
// dashes only. No letter and no code may occur twice, which makes the mapping
// injective in both directions. A table may cover a subset of the alphabet;
// letters not covered are unsupported for encoding.
func NewTable(name string, entries []Entry) (*Table, error) {
	index := newDATIndex()
	t := &Table{
		index:      index,
		prefixes:   trie.New(),
		identifier: fmt.Sprintf("alphabet: %s", name),
	}
	type pendingLetter struct {
		pos    int
		letter rune
	}
	pending := make([]pendingLetter, 0, len(entries))
	byPos := make(map[int]rune, len(entries))
	for _, e := range entries {
		if !isLetter(e.Letter) {
			return nil, fmt.Errorf("entry %q: letter out of range A–Z", e.Letter)
		}
		if t.codes[e.Letter-'A'] != "" {
			return nil, fmt.Errorf("entry %q: duplicate letter", e.Letter)
		}
		key, ok := index.EncodeKey(e.Code)
		if !ok {
			return nil, fmt.Errorf("entry %q: invalid code %q", e.Letter, e.Code)
		}
		pos := index.AllocPositionForCode(key)
		if pos == 0 {
			return nil, fmt.Errorf("entry %q: could not allocate index position for code %q", e.Letter, e.Code)
		}
		if other, dup := byPos[pos]; dup {
			return nil, fmt.Errorf("entry %q: code %q already used by %q", e.Letter, e.Code, other)
		}
		byPos[pos] = e.Letter
		t.codes[e.Letter-'A'] = e.Code
		t.prefixes.Add(string(e.Code), e.Letter)
		pending = append(pending, pendingLetter{pos: pos, letter: e.Letter})
	}
	index.Freeze()
	t.letters = newLetterStore()
	for _, p := range pending {
		state := index.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("could not resolve index position after freeze for temporary position %d", p.pos)
		}
		if err := t.letters.Put(state, p.letter); err != nil {
			return nil, err
		}
	}
	backend, used, total, maxStateID, fill := t.IndexStats()
	tracer().Infof("%s: %d letters, code index backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		t.identifier, t.letters.Len(), backend, used, total, fill, maxStateID)
	return t, nil
}

// Identifier identifies the table, e.g. "alphabet: international".
func (t *Table) Identifier() string {
	return t.identifier
}

// IndexStats reports density metrics for the reverse code index.
func (t *Table) IndexStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if t == nil || t.index == nil {
		return "", 0, 0, 0, 0
	}
	stats := t.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

// LookupCode returns the code of an upper case letter. ok is false if the
// table has no code for letter.
func (t *Table) LookupCode(letter rune) (code Code, ok bool) {
	if !isLetter(letter) {
		return "", false
	}
	code = t.codes[letter-'A']
	return code, code != ""
}

// LookupLetter returns the letter for a code. ok is false if code is not
// a known letter code, e.g. for malformed or truncated input.
func (t *Table) LookupLetter(code Code) (letter rune, ok bool) {
	key, ok := t.index.EncodeKey(code)
	if !ok {
		return 0, false
	}
	return t.letters.Letter(t.index.Lookup(key))
}

// Entries returns all (letter, code) pairs of the table in alphabetical order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.codes))
	for i, code := range t.codes {
		if code != "" {
			entries = append(entries, Entry{Letter: rune('A' + i), Code: code})
		}
	}
	return entries
}

// Completions returns all entries whose code starts with prefix, shortest
// codes first, dashes before dots. An empty prefix yields all entries.
//
// Example:
//
//	"..." => [ S "...", V "...-", H "...." ].
func (t *Table) Completions(prefix Code) []Entry {
	keys := t.prefixes.PrefixSearch(string(prefix))
	if len(keys) == 0 {
		return nil
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		node, ok := t.prefixes.Find(key)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Letter: node.Meta().(rune), Code: Code(key)})
	}
	return entries
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
