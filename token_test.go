package morse

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	code := func(c Code) Token { return Token{Kind: LetterCode, Code: c} }
	ls := Token{Kind: LetterSeparator}
	ws := Token{Kind: WordSeparator}
	tests := []struct {
		morse string
		want  []Token
	}{
		{morse: "", want: []Token{}},
		{morse: "...", want: []Token{code("...")}},
		{morse: "... --- ...", want: []Token{code("..."), ls, code("---"), ls, code("...")}},
		{morse: ".- / -...", want: []Token{code(".-"), ws, code("-...")}},
		{morse: " / ", want: []Token{ws}},
		{morse: "......", want: []Token{code("......")}}, // unknown codes pass
	}
	for _, tt := range tests {
		got, err := Tokenize(tt.morse)
		if err != nil {
			t.Fatalf("tokenize %q: %v", tt.morse, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("tokenize %q: got %v, want %v", tt.morse, got, tt.want)
		}
		if r := Render(got); r != tt.morse {
			t.Fatalf("render of tokens for %q yields %q", tt.morse, r)
		}
	}
}

func TestEncodeTokens(t *testing.T) {
	tokens, err := Standard().EncodeTokens("SO S")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: LetterCode, Code: "..."},
		{Kind: LetterSeparator},
		{Kind: LetterCode, Code: "---"},
		{Kind: WordSeparator},
		{Kind: LetterCode, Code: "..."},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	text, err := Standard().DecodeTokens(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if text != "SO S" {
		t.Fatalf("decoding tokens yields %q", text)
	}
}

func TestDecodeTokensUnknownCode(t *testing.T) {
	tokens := []Token{
		{Kind: LetterCode, Code: "..."},
		{Kind: WordSeparator},
		{Kind: LetterCode, Code: ".-.-.-"},
	}
	_, err := Standard().DecodeTokens(tokens)
	merr, ok := err.(*MalformedTokenError)
	if !ok {
		t.Fatalf("expected *MalformedTokenError, got %v", err)
	}
	if merr.Offset != 6 || merr.Token != ".-.-.-" {
		t.Fatalf("expected %q at offset 6, got %q at %d", ".-.-.-", merr.Token, merr.Offset)
	}
}

func TestTokenString(t *testing.T) {
	if s := (Token{Kind: LetterCode, Code: ".-"}).String(); s != "LetterCode(.-)" {
		t.Fatalf("unexpected token string %q", s)
	}
	if s := (Token{Kind: WordSeparator}).String(); s != "WordSeparator" {
		t.Fatalf("unexpected token string %q", s)
	}
	if s := TokenKind(9).String(); s != "<unknown>" {
		t.Fatalf("unexpected token kind string %q", s)
	}
}

func TestDecodeTokensMalformedStream(t *testing.T) {
	code := func(c Code) Token { return Token{Kind: LetterCode, Code: c} }
	ls := Token{Kind: LetterSeparator}
	ws := Token{Kind: WordSeparator}
	tests := []struct {
		name   string
		tokens []Token
		token  string
		offset int
		reason string
	}{
		{"adjacent codes", []Token{code(".-"), code("-...")}, "-...", 2, "missing separator"},
		{"adjacent codes, bogus kind", []Token{code(".-"), code("-..."), {Kind: 7}}, "-...", 2, "missing separator"},
		{"leading letter separator", []Token{ls, code(".")}, " ", 0, "outside of a word"},
		{"trailing letter separator", []Token{code("."), ls}, " ", 1, "outside of a word"},
		{"repeated letter separator", []Token{code("."), ls, ls, code(".")}, " ", 2, "outside of a word"},
		{"letter separator before word separator", []Token{code("."), ls, ws, code(".")}, " ", 1, "outside of a word"},
		{"unknown kind", []Token{code(".-"), {Kind: 7}}, "<unknown>", 2, "unknown token kind 7"},
		{"empty code", []Token{ws, {Kind: LetterCode}}, "", 3, "empty letter code"},
	}
	for _, tt := range tests {
		text, err := Standard().DecodeTokens(tt.tokens)
		if err == nil {
			t.Fatalf("%s: expected error, got %q", tt.name, text)
		}
		merr, ok := err.(*MalformedTokenError)
		if !ok {
			t.Fatalf("%s: expected *MalformedTokenError, got %v", tt.name, err)
		}
		if merr.Token != tt.token || merr.Offset != tt.offset {
			t.Fatalf("%s: expected %q at offset %d, got %q at %d", tt.name, tt.token, tt.offset, merr.Token, merr.Offset)
		}
		if !strings.Contains(merr.Reason, tt.reason) {
			t.Fatalf("%s: expected reason containing %q, got %q", tt.name, tt.reason, merr.Reason)
		}
	}
}

func TestDecodeTokensAgreesWithDecode(t *testing.T) {
	for _, morse := range []string{"", " / ", ".- /  / -...", ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."} {
		tokens, err := Tokenize(morse)
		if err != nil {
			t.Fatalf("tokenize %q: %v", morse, err)
		}
		fromTokens, err := Standard().DecodeTokens(tokens)
		if err != nil {
			t.Fatalf("decode tokens of %q: %v", morse, err)
		}
		fromText, err := Decode(morse)
		if err != nil {
			t.Fatalf("decode %q: %v", morse, err)
		}
		if fromTokens != fromText {
			t.Fatalf("%q: DecodeTokens yields %q, Decode yields %q", morse, fromTokens, fromText)
		}
	}
}

func TestRenderUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Render to panic on a token of unknown kind")
		}
	}()
	Render([]Token{{Kind: LetterCode, Code: "."}, {Kind: 7}})
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	_, err := Tokenize("...\xff")
	merr, ok := err.(*MalformedTokenError)
	if !ok {
		t.Fatalf("expected *MalformedTokenError, got %v", err)
	}
	if merr.Token != "\xff" || merr.Offset != 3 || merr.Reason != "invalid UTF-8" {
		t.Fatalf("unexpected error %v", merr)
	}
}
