package parsec

import "fmt"

// Tok is a token positioned in the character source.
type Tok struct {
	Index  int         // index of the first character of the token
	Length int         // number of characters of the token
	Token  interface{} // token value, created by a Tokenizer
}

func (t Tok) String() string {
	return fmt.Sprintf("%v@%d", t.Token, t.Index)
}

// Tokenizer creates a token value from length characters of src, starting
// at from. It returns false if the characters do not make up a valid token.
type Tokenizer func(src []rune, from, length int) (interface{}, bool)

// FromToken recognizes a token in token-level grammars.
type FromToken[T any] func(tok Tok) (T, bool)

// FromString creates a value from the text of a lexeme.
type FromString[T any] func(from, length int, text string) T

// ShowToken renders a token value in diagnostics.
type ShowToken func(tok interface{}) string

// --- Lexers ----------------------------------------------------------------

// Lex runs the scanner and creates a token from the text it has matched.
// If the tokenizer rejects the text, Lex fails with "msg expected" and
// consumes nothing.
//
// A lexer counts as exactly one logical step, no matter how many
// characters its scanner consumes. An empty match takes no step.
func Lex(scanner Consumer, tokenizer Tokenizer, msg string) Parser[Tok] {
	return New(scanner.Name(), func(s *State) (Tok, bool) {
		s.mustBeCharMode()
		m := s.mark()
		if !scanner.consume(s, DefaultLookahead) {
			return Tok{}, false
		}
		from, n := m.at, s.at-m.at
		tok, ok := tokenizer(s.src, from, n)
		if !ok {
			s.tracer().Debugf("lexer %s rejected %q", scanner.Name(), string(s.src[from:s.at]))
			s.restore(m)
			return Tok{}, s.Fail(&ExpectingError{at: from, Label: msg})
		}
		if n > 0 {
			s.step = m.step + 1
		}
		return Tok{Index: from, Length: n, Token: tok}, true
	})
}

// LexString runs the scanner and creates a value from the matched text.
func LexString[T any](scanner Consumer, f FromString[T]) Parser[T] {
	return New(scanner.Name(), func(s *State) (T, bool) {
		s.mustBeCharMode()
		m := s.mark()
		if !scanner.consume(s, DefaultLookahead) {
			var zero T
			return zero, false
		}
		from, n := m.at, s.at-m.at
		if n > 0 {
			s.step = m.step + 1
		}
		return f(from, n, string(s.src[from:s.at])), true
	})
}

// Lexeme skips delimiters, then collects the tokens of lexer, each one
// followed by delimiters, up to the end of input.
func Lexeme(delim Consumer, lexer Parser[Tok]) Parser[[]Tok] {
	skip := SkipMany(delim)
	return Right(skip, Left(Many(Left(lexer, skip)), EOF())).Named("lexeme " + lexer.name)
}

// --- Token-level terminals -------------------------------------------------

// IsToken matches a single token recognized by from.
func IsToken[T any](from FromToken[T], label string) Parser[T] {
	return New(label, func(s *State) (T, bool) {
		s.mustBeTokenMode()
		if s.at < s.end {
			if v, ok := from(s.toks[s.at]); ok {
				s.Advance(1)
				return v, true
			}
		}
		var zero T
		return zero, s.expecting(label)
	})
}

// AnyTok matches any token.
func AnyTok() Parser[Tok] {
	return IsToken(func(t Tok) (Tok, bool) { return t, true }, "any token")
}

// TokEOF succeeds if all tokens have been consumed.
func TokEOF() Parser[Unit] {
	return New("EOF", func(s *State) (Unit, bool) {
		s.mustBeTokenMode()
		if s.at < s.end {
			return Unit{}, s.expecting(s.eofLabel)
		}
		return Unit{}, true
	})
}

// --- Two-phase parsing -----------------------------------------------------

// Nested runs lexer on the character input and then p on the tokens the
// lexer has produced. Diagnostics of p refer to the character source.
//
// The user state is passed down into the token phase and back on success.
func Nested[T any](lexer Parser[[]Tok], p Parser[T]) Parser[T] {
	return New(p.name, func(s *State) (T, bool) {
		var zero T
		toks, ok := lexer.apply(s)
		if !ok {
			return zero, false
		}
		c := s.child(toks)
		defer c.releaseIntoPool()
		s.tracer().Debugf("nested parse %s: %d tokens", p.name, len(toks))
		v, ok := p.apply(c)
		if !ok {
			s.err = c.err
			s.adoptFailure(c)
			return zero, false
		}
		s.step += c.step
		s.user = c.user
		return v, true
	})
}

// From parses the tokens produced by lexer with p, which has to consume all
// of them.
func From[T any](p Parser[T], lexer Parser[[]Tok]) Parser[T] {
	return Nested(lexer, Left(p, TokEOF()))
}
