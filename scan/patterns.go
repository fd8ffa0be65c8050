package scan

import (
	"github.com/npillmayer/parsec/pattern"
)

// Patterns for the common scanners. They may be combined freely, e.g.
// into delimiters.
var (
	WhitespacePattern      = pattern.Many1(pattern.IsWhitespace)
	IdentifierPattern      = pattern.Seq(pattern.Char(pattern.IsAlpha), pattern.Many(pattern.IsAlphaNumeric))
	IntegerPattern         = pattern.Many1(pattern.IsDigit)
	DecimalPattern         = pattern.Seq(IntegerPattern, pattern.Optional(pattern.Seq(pattern.Char(pattern.IsChar('.')), IntegerPattern)))
	HexNumberPattern       = pattern.Seq(pattern.StringCI("0x"), pattern.Many1(pattern.IsHexDigit))
	JavaLineCommentPattern = LineCommentPattern("//")
)

// LineCommentPattern matches start and everything up to the end of the line.
// The line break itself is not part of the match.
func LineCommentPattern(start string) pattern.Pattern {
	return pattern.Seq(pattern.String(start), pattern.Many(pattern.NotChar('\n')))
}

// BlockCommentPattern matches open, everything up to the first close, and
// close.
func BlockCommentPattern(open, close string) pattern.Pattern {
	end := pattern.String(close)
	return pattern.Seq(pattern.String(open), pattern.Until(end), end)
}

// NestedBlockCommentPattern matches a block comment which may contain
// block comments itself.
func NestedBlockCommentPattern(open, close string) pattern.Pattern {
	o, c := pattern.String(open), pattern.String(close)
	return pattern.Func(func(src []rune, from, end int) int {
		n := o.Match(src, from, end)
		if n == pattern.Mismatch {
			return pattern.Mismatch
		}
		depth, at := 1, from+n
		for at < end {
			if n = c.Match(src, at, end); n != pattern.Mismatch {
				at += n
				if depth--; depth == 0 {
					return at - from
				}
			} else if n = o.Match(src, at, end); n != pattern.Mismatch {
				at += n
				depth++
			} else {
				at++
			}
		}
		return pattern.Mismatch
	})
}

// QuotedPattern matches characters enclosed in quote characters. Within the
// quotes escape protects the following character.
func QuotedPattern(quote, escape rune) pattern.Pattern {
	return pattern.Func(func(src []rune, from, end int) int {
		if from >= end || src[from] != quote {
			return pattern.Mismatch
		}
		for at := from + 1; at < end; at++ {
			switch src[at] {
			case escape:
				at++
			case quote:
				return at + 1 - from
			}
		}
		return pattern.Mismatch
	})
}

// QuotedCharPattern matches a single, possibly escaped, character in
// single quotes, e.g. 'a' or '\n'.
func QuotedCharPattern(escape rune) pattern.Pattern {
	return pattern.Func(func(src []rune, from, end int) int {
		if end-from < 3 || src[from] != '\'' {
			return pattern.Mismatch
		}
		at := from + 1
		if src[at] == escape {
			at++
		} else if src[at] == '\'' {
			return pattern.Mismatch
		}
		at++
		if at >= end || src[at] != '\'' {
			return pattern.Mismatch
		}
		return at + 1 - from
	})
}

// SingleQuotedPattern matches an SQL-style string literal in single quotes,
// where a quote within the literal is written as two quotes.
func SingleQuotedPattern() pattern.Pattern {
	return pattern.Func(func(src []rune, from, end int) int {
		if from >= end || src[from] != '\'' {
			return pattern.Mismatch
		}
		for at := from + 1; at < end; at++ {
			if src[at] != '\'' {
				continue
			}
			if at+1 < end && src[at+1] == '\'' {
				at++
				continue
			}
			return at + 1 - from
		}
		return pattern.Mismatch
	})
}
