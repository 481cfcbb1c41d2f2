package morse

import (
	"fmt"
	"strings"
)

// Decode decodes Morse text using the standard table.
// See (*Table).Decode.
func Decode(morse string) (string, error) {
	return standard.Decode(morse)
}

// Decode returns the plain text for Morse text.
//
// Letter boundaries are taken from the separators only: a single space
// separates two letters, " / " separates two words and decodes to a single
// space. A code without a letter fails the whole call with a
// *MalformedTokenError, as does input which is not a well-formed token
// stream (see Tokenize).
//
// Example:
//
//	".... . .-.. .-.. --- / .-- --- .-. .-.. -.." => "HELLO WORLD".
func (t *Table) Decode(morse string) (string, error) {
	tokens, err := Tokenize(morse)
	if err != nil {
		tracer().Debugf("cannot tokenize Morse input: %v", err)
		return "", err
	}
	return t.decodeTokens(tokens, morse)
}

// DecodeTokens returns the plain text for a token stream.
// The stream has to be well-formed in the sense of Tokenize: a
// LetterSeparator sits between two LetterCode tokens, and two LetterCode
// tokens are never adjacent. Error offsets refer to the rendered form of
// tokens.
func (t *Table) DecodeTokens(tokens []Token) (string, error) {
	return t.decodeTokens(tokens, "")
}

func (t *Table) decodeTokens(tokens []Token, morse string) (string, error) {
	var b strings.Builder
	b.Grow(len(tokens)/2 + 1)
	offset := 0 // byte offset of the current token in its rendered form
	for i, token := range tokens {
		switch token.Kind {
		case LetterCode:
			if i > 0 && tokens[i-1].Kind == LetterCode {
				return "", &MalformedTokenError{
					Token:  string(token.Code),
					Offset: offset,
					Reason: "missing separator between letter codes",
				}
			}
			letter, ok := t.LookupLetter(token.Code)
			if !ok {
				tracer().P("offset", offset).Debugf("no letter for code %q", token.Code)
				return "", &MalformedTokenError{
					Token:  string(token.Code),
					Offset: offset,
					Reason: unknownCodeReason(t, token.Code),
				}
			}
			b.WriteRune(letter)
			offset += len(token.Code)
		case LetterSeparator:
			if i == 0 || tokens[i-1].Kind != LetterCode || i+1 == len(tokens) || tokens[i+1].Kind != LetterCode {
				return "", &MalformedTokenError{
					Token:  letterSeparatorText,
					Offset: offset,
					Reason: "letter separator outside of a word",
				}
			}
			offset += len(letterSeparatorText)
		case WordSeparator:
			b.WriteByte(' ')
			offset += len(wordSeparatorText)
		default:
			return "", &MalformedTokenError{
				Token:  token.String(),
				Offset: offset,
				Reason: fmt.Sprintf("unknown token kind %d", token.Kind),
			}
		}
	}
	assert(morse == "" || offset == len(morse), "token stream does not cover Morse input")
	return b.String(), nil
}

func unknownCodeReason(t *Table, code Code) string {
	if code == "" {
		return "empty letter code"
	}
	if len(t.Completions(code)) > 0 {
		return "truncated letter code"
	}
	return "no letter for this code"
}
