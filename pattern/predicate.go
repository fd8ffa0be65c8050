package pattern

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharPredicate decides whether a single character is acceptable.
type CharPredicate func(rune) bool

// Always accepts any character.
func Always(rune) bool { return true }

// Never accepts no character at all.
func Never(rune) bool { return false }

// IsChar accepts c only.
func IsChar(c rune) CharPredicate {
	return func(r rune) bool { return r == c }
}

// NotChar accepts anything but c.
func NotChar(c rune) CharPredicate {
	return func(r rune) bool { return r != c }
}

// Range accepts characters in [from…to].
func Range(from, to rune) CharPredicate {
	return func(r rune) bool { return r >= from && r <= to }
}

// Among accepts any of the characters in chars.
//
// The characters are compiled into a Unicode range table, so long lists of
// characters do not degrade matching speed.
func Among(chars string) CharPredicate {
	runes := []rune(chars)
	switch len(runes) {
	case 0:
		return Never
	case 1:
		return IsChar(runes[0])
	case 2:
		a, b := runes[0], runes[1]
		return func(r rune) bool { return r == a || r == b }
	}
	table := rangetable.New(runes...)
	return func(r rune) bool { return unicode.Is(table, r) }
}

// NotAmong accepts any character not contained in chars.
func NotAmong(chars string) CharPredicate {
	return Negate(Among(chars))
}

// InTable accepts characters contained in a Unicode range table.
func InTable(table *unicode.RangeTable) CharPredicate {
	return func(r rune) bool { return unicode.Is(table, r) }
}

// IsDigit accepts the decimal digits 0…9.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsHexDigit accepts 0…9, a…f and A…F.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsLetter accepts Unicode letters.
func IsLetter(r rune) bool { return unicode.IsLetter(r) }

// IsAlpha accepts letters and the underscore.
func IsAlpha(r rune) bool { return r == '_' || unicode.IsLetter(r) }

// IsAlphaNumeric accepts letters, digits and the underscore.
func IsAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWhitespace accepts Unicode white space.
func IsWhitespace(r rune) bool { return unicode.IsSpace(r) }

// IsLowerCase accepts lower case letters.
func IsLowerCase(r rune) bool { return unicode.IsLower(r) }

// IsUpperCase accepts upper case letters.
func IsUpperCase(r rune) bool { return unicode.IsUpper(r) }

// Negate negates a predicate.
func Negate(p CharPredicate) CharPredicate {
	return func(r rune) bool { return !p(r) }
}

// AllOf accepts a character if all the predicates accept it.
func AllOf(ps ...CharPredicate) CharPredicate {
	return func(r rune) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// AnyOf accepts a character if any of the predicates accepts it.
func AnyOf(ps ...CharPredicate) CharPredicate {
	return func(r rune) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}
