package morse

import (
	"unicode"
	"unicode/utf8"
)

// Encode encodes text using the standard table.
// See (*Table).Encode.
func Encode(text string) (string, error) {
	return standard.Encode(text)
}

// Encode returns the Morse rendering of text.
//
// Letters of a word are separated by a single space, words by " / ".
// Lower case letters a–z are encoded as their upper case counterparts. Every
// run of whitespace, including leading and trailing runs, counts as exactly
// one word separator. Any other character fails the whole call with an
// *UnsupportedCharacterError.
//
// Example:
//
//	"SOS" => "... --- ...".
func (t *Table) Encode(text string) (string, error) {
	tokens, err := t.EncodeTokens(text)
	if err != nil {
		return "", err
	}
	return Render(tokens), nil
}

// EncodeTokens returns the token stream for text. See (*Table).Encode.
func (t *Table) EncodeTokens(text string) ([]Token, error) {
	tokens := make([]Token, 0, 2*len(text))
	inWord := false
	for i, r := range text {
		if unicode.IsSpace(r) {
			if inWord || len(tokens) == 0 {
				tokens = append(tokens, Token{Kind: WordSeparator})
			}
			inWord = false
			continue
		}
		code, ok := t.LookupCode(normalize(r))
		if !ok {
			tracer().P("offset", i).Debugf("cannot encode %#U", r)
			err := &UnsupportedCharacterError{Char: r, Offset: i}
			if r == utf8.RuneError {
				if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
					err.Byte = text[i]
				}
			}
			return nil, err
		}
		if inWord {
			tokens = append(tokens, Token{Kind: LetterSeparator})
		}
		tokens = append(tokens, Token{Kind: LetterCode, Code: code})
		inWord = true
	}
	return tokens, nil
}

func normalize(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
