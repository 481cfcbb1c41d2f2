/*
Package morse encodes plain text to International Morse code and decodes it
back.

Morse code is a variable-length code over two symbols, dot and dash. Codes are
not prefix-free: "..." is S, but it is also the beginning of H ("....") and
V ("...-"). A run of dots and dashes alone therefore cannot be split into
letters. This package models Morse text as a stream of tokens instead:

	LetterCode       a run of dots and dashes, rendered as e.g. "..."
	LetterSeparator  between two letters of one word, rendered as " "
	WordSeparator    between two words, rendered as " / "

Decoding splits on the separators only and never guesses letter boundaries
from code lengths.

	s, _ := morse.Encode("HELLO WORLD")
	// s == ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
	t, _ := morse.Decode(s)
	// t == "HELLO WORLD"

The reverse direction of the alphabet table is a frozen double-array trie over
the two code symbols, with letters kept in a compact store indexed by trie
state.

Both operations are pure. The standard table is built once at package
initialization and is read-only afterwards, so any number of goroutines may
call Encode and Decode concurrently.

Further Reading

	https://www.itu.int/rec/R-REC-M.1677-1-200910-I/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package morse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morse'
func tracer() tracing.Trace {
	return tracing.Select("morse")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
