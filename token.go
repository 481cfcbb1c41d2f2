package morse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenKind classifies the tokens of a Morse token stream.
type TokenKind uint8

// Kinds of tokens.
const (
	LetterCode      TokenKind = iota // a letter's dots and dashes
	LetterSeparator                  // between two letters of a word
	WordSeparator                    // between two words
)

func (k TokenKind) String() string {
	switch k {
	case LetterCode:
		return "LetterCode"
	case LetterSeparator:
		return "LetterSeparator"
	case WordSeparator:
		return "WordSeparator"
	}
	return "<unknown>"
}

// Renderings of the structural tokens.
const (
	letterSeparatorText = " "
	wordSeparatorText   = " / "
)

// Token is one unit of Morse text. Code is set for LetterCode tokens only.
type Token struct {
	Kind TokenKind
	Code Code
}

func (t Token) String() string {
	if t.Kind == LetterCode {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Code)
	}
	return t.Kind.String()
}

// Render returns the textual form of a token stream.
// It panics on tokens of unknown kind.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case LetterCode:
			b.WriteString(string(t.Code))
		case LetterSeparator:
			b.WriteString(letterSeparatorText)
		case WordSeparator:
			b.WriteString(wordSeparatorText)
		default:
			panic(fmt.Sprintf("morse: cannot render token of unknown kind %d", t.Kind))
		}
	}
	return b.String()
}

// Tokenize splits Morse text into tokens, using the separators only.
// It is the inverse of Render: a single space between two codes is a
// LetterSeparator, " / " is a WordSeparator. Any other spacing, a stray '/'
// or a character which is neither a symbol nor part of a separator results
// in a *MalformedTokenError.
//
// Tokenize does not check whether codes denote letters.
func Tokenize(morse string) ([]Token, error) {
	tokens := make([]Token, 0, len(morse)/2+1)
	i := 0
	for i < len(morse) {
		switch c := morse[i]; {
		case isSymbol(c):
			start := i
			for i < len(morse) && isSymbol(morse[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: LetterCode, Code: Code(morse[start:i])})
		case strings.HasPrefix(morse[i:], wordSeparatorText):
			tokens = append(tokens, Token{Kind: WordSeparator})
			i += len(wordSeparatorText)
		case c == ' ':
			// must sit between two codes
			last := len(tokens) - 1
			if last < 0 || tokens[last].Kind != LetterCode || i+1 >= len(morse) || !isSymbol(morse[i+1]) {
				return nil, malformedSpacing(morse, i)
			}
			tokens = append(tokens, Token{Kind: LetterSeparator})
			i++
		case c == '/':
			return nil, &MalformedTokenError{Token: "/", Offset: i, Reason: "word separator must be written as \" / \""}
		default:
			r, size := utf8.DecodeRuneInString(morse[i:])
			if r == utf8.RuneError && size == 1 {
				return nil, &MalformedTokenError{Token: morse[i : i+1], Offset: i, Reason: "invalid UTF-8"}
			}
			return nil, &MalformedTokenError{Token: string(r), Offset: i, Reason: "not a Morse symbol"}
		}
	}
	return tokens, nil
}

func malformedSpacing(morse string, at int) error {
	end := at
	for end < len(morse) && (morse[end] == ' ' || morse[end] == '/') {
		end++
	}
	return &MalformedTokenError{Token: morse[at:end], Offset: at, Reason: "irregular spacing"}
}

func isSymbol(c byte) bool {
	return c == Dot || c == Dash
}
