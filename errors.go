package morse

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCharacter is matched (via errors.Is) by every error reporting
// text input outside of A–Z and whitespace.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// ErrMalformedToken is matched (via errors.Is) by every error reporting
// Morse input which cannot be tokenized or contains an unknown code.
var ErrMalformedToken = errors.New("malformed token")

// UnsupportedCharacterError is returned by Encode for a character which has
// no Morse code.
type UnsupportedCharacterError struct {
	Char   rune
	Offset int  // byte offset in the input text
	Byte   byte // offending byte if the text is not valid UTF-8, Char is utf8.RuneError then
}

func (e *UnsupportedCharacterError) Error() string {
	if e.Byte != 0 {
		return fmt.Sprintf("%v: invalid UTF-8 byte %#02x at offset %d", ErrUnsupportedCharacter, e.Byte, e.Offset)
	}
	return fmt.Sprintf("%v: %q at offset %d", ErrUnsupportedCharacter, e.Char, e.Offset)
}

func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

// MalformedTokenError is returned by Decode and Tokenize for input which is
// not a well-formed token stream.
type MalformedTokenError struct {
	Token  string // offending input fragment
	Offset int    // byte offset in the Morse input
	Reason string
}

func (e *MalformedTokenError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q at offset %d", ErrMalformedToken, e.Token, e.Offset)
	}
	return fmt.Sprintf("%v: %q at offset %d: %s", ErrMalformedToken, e.Token, e.Offset, e.Reason)
}

func (e *MalformedTokenError) Unwrap() error {
	return ErrMalformedToken
}
