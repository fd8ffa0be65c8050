package parsec

import (
	"fmt"

	"github.com/npillmayer/parsec/pattern"
)

// Character-level terminals. Each of them takes exactly one logical step
// when it succeeds, and consumes nothing when it fails.

// Satisfy matches a single character for which pred holds.
func Satisfy(label string, pred pattern.CharPredicate) Parser[rune] {
	return New(label, func(s *State) (rune, bool) {
		r, ok := s.Peek()
		if !ok || !pred(r) {
			return 0, s.expecting(label)
		}
		s.Advance(1)
		return r, true
	})
}

// IsChar matches the character c.
func IsChar(c rune) Parser[rune] {
	return Satisfy(fmt.Sprintf("%q", c), pattern.IsChar(c))
}

// AnyChar matches any single character.
func AnyChar() Parser[rune] {
	return Satisfy("any character", pattern.Always)
}

// IsPattern matches pat and returns the matched text.
func IsPattern(label string, pat pattern.Pattern) Parser[string] {
	return New(label, func(s *State) (string, bool) {
		s.mustBeCharMode()
		n := pat.Match(s.src, s.at, s.end)
		if n == pattern.Mismatch {
			return "", s.expecting(label)
		}
		text := string(s.src[s.at : s.at+n])
		s.Advance(n)
		return text, true
	})
}

// IsString matches str.
func IsString(str string) Parser[string] {
	return IsPattern(fmt.Sprintf("%q", str), pattern.String(str))
}

// IsStringCI matches str, ignoring case. It returns the text as found in
// the input.
func IsStringCI(str string) Parser[string] {
	return IsPattern(fmt.Sprintf("%q", str), pattern.StringCI(str))
}

// EOF succeeds at the end of input, for character and token input alike.
func EOF() Parser[Unit] {
	return New("EOF", func(s *State) (Unit, bool) {
		if !s.AtEOF() {
			return Unit{}, s.expecting(s.eofLabel)
		}
		return Unit{}, true
	})
}

// Source runs c and returns the text c has consumed.
func Source(c Consumer) Parser[string] {
	return newLA(c.Name(), func(s *State, la int) (string, bool) {
		s.mustBeCharMode()
		from := s.at
		if !c.consume(s, la) {
			return "", false
		}
		return string(s.src[from:s.at]), true
	})
}
