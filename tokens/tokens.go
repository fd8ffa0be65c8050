/*
Package tokens provides token values and tokenizers for the lexers of
two-phase grammars.

Token values are small, comparable types. Tokenizers create them from the
text a scanner has matched and are used with parsec.Lex:

	number := parsec.Lex(scan.Integer(), tokens.TokenizeInteger, "integer")
*/
package tokens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/parsec"
)

// Word is an identifier or other generic word.
type Word string

// Reserved is a reserved word or an operator.
type Reserved string

// Integer is an integer literal.
type Integer int64

// Decimal is a decimal number literal.
type Decimal float64

// Quoted is a string literal, with quotes removed and escapes resolved.
type Quoted string

// Char is a character literal.
type Char rune

// Typed is a token of a client-defined kind.
type Typed struct {
	Kind string
	Text string
}

func (w Word) String() string     { return string(w) }
func (r Reserved) String() string { return string(r) }
func (t Typed) String() string    { return t.Kind + "(" + t.Text + ")" }

func text(src []rune, from, n int) string {
	return string(src[from : from+n])
}

// TokenizeWord creates a Word.
func TokenizeWord(src []rune, from, n int) (interface{}, bool) {
	return Word(text(src, from, n)), true
}

// TokenizeReserved creates a Reserved.
func TokenizeReserved(src []rune, from, n int) (interface{}, bool) {
	return Reserved(text(src, from, n)), true
}

// TokenizeInteger creates an Integer from a decimal literal or a hex
// literal with prefix 0x. Literals out of range are rejected.
func TokenizeInteger(src []rune, from, n int) (interface{}, bool) {
	lit, base := text(src, from, n), 10
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		lit, base = lit[2:], 16
	}
	i, err := strconv.ParseInt(lit, base, 64)
	if err != nil {
		return nil, false
	}
	return Integer(i), true
}

// TokenizeDecimal creates a Decimal.
func TokenizeDecimal(src []rune, from, n int) (interface{}, bool) {
	f, err := strconv.ParseFloat(text(src, from, n), 64)
	if err != nil {
		return nil, false
	}
	return Decimal(f), true
}

// TokenizeString creates a Quoted from a string literal in double quotes,
// resolving Go escape sequences.
func TokenizeString(src []rune, from, n int) (interface{}, bool) {
	s, err := strconv.Unquote(text(src, from, n))
	if err != nil {
		return nil, false
	}
	return Quoted(s), true
}

// TokenizeChar creates a Char from a character literal in single quotes.
func TokenizeChar(src []rune, from, n int) (interface{}, bool) {
	s, err := strconv.Unquote(text(src, from, n))
	if err != nil {
		return nil, false
	}
	r := []rune(s)
	if len(r) != 1 {
		return nil, false
	}
	return Char(r[0]), true
}

// TokenizeTyped returns a tokenizer for tokens of the given kind.
func TokenizeTyped(kind string) parsec.Tokenizer {
	return func(src []rune, from, n int) (interface{}, bool) {
		return Typed{Kind: kind, Text: text(src, from, n)}, true
	}
}

// ShowToken renders the token values of this package in diagnostics.
func ShowToken(tok interface{}) string {
	switch t := tok.(type) {
	case Reserved:
		return fmt.Sprintf("%q", string(t))
	case Word:
		return string(t)
	case Quoted:
		return strconv.Quote(string(t))
	case Char:
		return strconv.QuoteRune(rune(t))
	case Typed:
		return t.String()
	}
	return fmt.Sprintf("%v", tok)
}

// --- Token-level parsers ---------------------------------------------------

// IsWord matches any Word token.
func IsWord() parsec.Parser[Word] {
	return parsec.IsToken(func(t parsec.Tok) (Word, bool) {
		w, ok := t.Token.(Word)
		return w, ok
	}, "word")
}

// IsReserved matches the reserved word or operator name.
func IsReserved(name string) parsec.Parser[Reserved] {
	return parsec.IsToken(func(t parsec.Tok) (Reserved, bool) {
		r, ok := t.Token.(Reserved)
		return r, ok && string(r) == name
	}, fmt.Sprintf("%q", name))
}

// IsInteger matches any Integer token.
func IsInteger() parsec.Parser[Integer] {
	return parsec.IsToken(func(t parsec.Tok) (Integer, bool) {
		i, ok := t.Token.(Integer)
		return i, ok
	}, "integer")
}

// IsDecimal matches any Decimal token.
func IsDecimal() parsec.Parser[Decimal] {
	return parsec.IsToken(func(t parsec.Tok) (Decimal, bool) {
		d, ok := t.Token.(Decimal)
		return d, ok
	}, "decimal number")
}

// IsQuoted matches any Quoted token.
func IsQuoted() parsec.Parser[Quoted] {
	return parsec.IsToken(func(t parsec.Tok) (Quoted, bool) {
		q, ok := t.Token.(Quoted)
		return q, ok
	}, "string literal")
}

// IsChar matches any Char token.
func IsChar() parsec.Parser[Char] {
	return parsec.IsToken(func(t parsec.Tok) (Char, bool) {
		c, ok := t.Token.(Char)
		return c, ok
	}, "character literal")
}

// IsTyped matches tokens of kind.
func IsTyped(kind string) parsec.Parser[Typed] {
	return parsec.IsToken(func(t parsec.Tok) (Typed, bool) {
		x, ok := t.Token.(Typed)
		return x, ok && x.Kind == kind
	}, kind)
}
