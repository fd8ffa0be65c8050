package tokens_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/internal/tracing"
	"github.com/npillmayer/parsec/scan"
	"github.com/npillmayer/parsec/tokens"
)

func tokenize(t *testing.T, tokenizer parsec.Tokenizer, text string) (interface{}, bool) {
	t.Helper()
	return tokenizer([]rune(text), 0, len([]rune(text)))
}

func TestTokenizers(t *testing.T) {
	tests := []struct {
		tokenizer parsec.Tokenizer
		text      string
		tok       interface{}
	}{
		{tokens.TokenizeWord, "abc", tokens.Word("abc")},
		{tokens.TokenizeReserved, "if", tokens.Reserved("if")},
		{tokens.TokenizeInteger, "0815", tokens.Integer(815)},
		{tokens.TokenizeInteger, "0x1F", tokens.Integer(31)},
		{tokens.TokenizeDecimal, "2.5", tokens.Decimal(2.5)},
		{tokens.TokenizeString, `"a\tb"`, tokens.Quoted("a\tb")},
		{tokens.TokenizeChar, `'\n'`, tokens.Char('\n')},
		{tokens.TokenizeTyped("op"), "+", tokens.Typed{Kind: "op", Text: "+"}},
	}
	for i, test := range tests {
		tok, ok := tokenize(t, test.tokenizer, test.text)
		if !ok {
			t.Errorf("test #%d: %q rejected", i, test.text)
		} else if tok != test.tok {
			t.Errorf("test #%d: expected %v, got %v", i, test.tok, tok)
		}
	}
	if _, ok := tokenize(t, tokens.TokenizeInteger, "99999999999999999999"); ok {
		t.Errorf("expected integer out of range to be rejected")
	}
}

func TestNumbers(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	lexer := parsec.Plus(
		parsec.Lex(scan.HexNumber(), tokens.TokenizeInteger, "integer"),
		parsec.Lex(scan.Integer(), tokens.TokenizeInteger, "integer"),
	)
	sum := parsec.Map(parsec.Many1(tokens.IsInteger()), func(ns []tokens.Integer) int64 {
		var s int64
		for _, n := range ns {
			s += int64(n)
		}
		return s
	})
	v, err := parsec.Parse(parsec.From(sum, parsec.Lexeme(scan.Whitespaces(), lexer)), "1 0x10 2")
	if err != nil {
		t.Fatal(err)
	}
	if v != 19 {
		t.Errorf("expected 19, got %d", v)
	}
}

func TestShowToken(t *testing.T) {
	got := []string{
		tokens.ShowToken(tokens.Reserved("if")),
		tokens.ShowToken(tokens.Word("x")),
		tokens.ShowToken(tokens.Quoted("a")),
		tokens.ShowToken(tokens.Char('c')),
		tokens.ShowToken(tokens.Integer(3)),
	}
	want := []string{`"if"`, "x", `"a"`, "'c'", "3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendering mismatch (-want +got):\n%s", diff)
	}
}
