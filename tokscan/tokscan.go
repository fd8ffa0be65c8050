/*
Package tokscan feeds token streams produced by parsec lexers into the LR
and Earley parsers of package gorgo.

A Scanner implements gorgo's scanner.Tokenizer. Token categories, which
gorgo grammars use as terminal symbols, are computed by a client-supplied
classification function:

	toks, err := parsec.Parse(parsec.Lexeme(delim, lexer), input)
	...
	sc := tokscan.New(toks, category, len(input))
*/
package tokscan

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/internal/tracing"
)

// Scanner implements the scanner.Tokenizer interface for a slice of
// tokens.
type Scanner struct {
	toks     []parsec.Tok
	classify func(parsec.Tok) int
	next     int
	end      uint64
	onError  func(error)
}

// New creates a scanner for toks. classify maps tokens to token categories,
// end is the source position reported for end of input.
func New(toks []parsec.Tok, classify func(parsec.Tok) int, end int) *Scanner {
	return &Scanner{
		toks:     toks,
		classify: classify,
		end:      uint64(end),
	}
}

// NextToken returns the category, value, position and length of the next
// token. After the last token it returns scanner.EOF.
//
// The expected categories are not checked; tokens have been recognized by
// the lexer already.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.next >= len(sc.toks) {
		return scanner.EOF, nil, sc.end, 0
	}
	tok := sc.toks[sc.next]
	sc.next++
	cat := sc.classify(tok)
	tracing.Syntax().Debugf("token %v as category %d", tok, cat)
	return cat, tok.Token, uint64(tok.Index), uint64(tok.Length)
}

// SetErrorHandler sets an error handler function. As tokens are checked
// before scanning, the handler receives errors from Reset only.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

// Reset rewinds the scanner to token i.
func (sc *Scanner) Reset(i int) {
	if i < 0 || i > len(sc.toks) {
		if sc.onError != nil {
			sc.onError(&ResetError{Index: i, Len: len(sc.toks)})
		}
		return
	}
	sc.next = i
}

// ResetError is reported to the error handler on illegal calls of Reset.
type ResetError struct {
	Index, Len int
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("tokscan: reset to token %d of %d", e.Index, e.Len)
}

var _ scanner.Tokenizer = (*Scanner)(nil)
