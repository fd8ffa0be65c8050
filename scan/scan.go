package scan

import (
	"fmt"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/pattern"
)

// Scanner is a character-level parser without a result.
type Scanner = parsec.Parser[parsec.Unit]

// IsPattern scans pat. If pat does not match, it fails with
// "label expected".
func IsPattern(label string, pat pattern.Pattern) Scanner {
	return parsec.Discard(parsec.IsPattern(label, pat)).Named(label)
}

// IsChar scans the character c.
func IsChar(c rune) Scanner {
	return parsec.Discard(parsec.IsChar(c)).Named(fmt.Sprintf("%q", c))
}

// NotChar scans any character but c.
func NotChar(c rune) Scanner {
	label := fmt.Sprintf("not %q", c)
	return parsec.Discard(parsec.Satisfy(label, pattern.NotChar(c))).Named(label)
}

// Satisfy scans a single character for which pred holds.
func Satisfy(label string, pred pattern.CharPredicate) Scanner {
	return parsec.Discard(parsec.Satisfy(label, pred)).Named(label)
}

// IsString scans str.
func IsString(str string) Scanner {
	return IsPattern(fmt.Sprintf("%q", str), pattern.String(str))
}

// IsStringCI scans str, ignoring case.
func IsStringCI(str string) Scanner {
	return IsPattern(fmt.Sprintf("%q", str), pattern.StringCI(str))
}

// Many scans zero or more characters for which pred holds.
func Many(label string, pred pattern.CharPredicate) Scanner {
	return IsPattern(label, pattern.Many(pred))
}

// Many1 scans one or more characters for which pred holds.
func Many1(label string, pred pattern.CharPredicate) Scanner {
	return IsPattern(label, pattern.Many1(pred))
}

// Whitespaces scans one or more white space characters.
func Whitespaces() Scanner {
	return IsPattern("whitespace", WhitespacePattern)
}

// JavaLineComment scans a comment from // to the end of the line.
func JavaLineComment() Scanner {
	return IsPattern("comment", JavaLineCommentPattern)
}

// LineComment scans a comment from start to the end of the line.
func LineComment(start string) Scanner {
	return IsPattern("comment", LineCommentPattern(start))
}

// BlockComment scans a comment from open to close.
func BlockComment(open, close string) Scanner {
	return IsPattern("comment", BlockCommentPattern(open, close))
}

// NestedBlockComment scans a comment from open to the matching close,
// counting nested comments.
func NestedBlockComment(open, close string) Scanner {
	return IsPattern("comment", NestedBlockCommentPattern(open, close))
}

// Identifier scans a letter or underscore, followed by letters, digits and
// underscores.
func Identifier() Scanner {
	return IsPattern("identifier", IdentifierPattern)
}

// Integer scans decimal digits.
func Integer() Scanner {
	return IsPattern("integer", IntegerPattern)
}

// Decimal scans a decimal number with an optional fraction.
func Decimal() Scanner {
	return IsPattern("decimal number", DecimalPattern)
}

// HexNumber scans a hexadecimal number with prefix 0x.
func HexNumber() Scanner {
	return IsPattern("hex number", HexNumberPattern)
}

// QuotedString scans a string literal in quote characters, where escape
// protects the following character.
func QuotedString(quote, escape rune) Scanner {
	return IsPattern("string literal", QuotedPattern(quote, escape))
}

// QuotedChar scans a character literal in single quotes, with backslash
// escapes.
func QuotedChar() Scanner {
	return IsPattern("character literal", QuotedCharPattern('\\'))
}

// SingleQuoted scans an SQL-style string literal in single quotes.
func SingleQuoted() Scanner {
	return IsPattern("string literal", SingleQuotedPattern())
}

// Delimiter scans white space and comments, in any order. With no comment
// patterns given it scans white space only.
func Delimiter(comments ...pattern.Pattern) Scanner {
	alts := append([]pattern.Pattern{WhitespacePattern}, comments...)
	return IsPattern("delimiter", pattern.Many1Of(pattern.Or(alts...)))
}
