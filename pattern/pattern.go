package pattern

import (
	"io"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Mismatch is returned by patterns which do not match.
const Mismatch = -1

// Pattern matches a prefix of src[from:end]. It returns the number of
// characters matched, or Mismatch.
type Pattern interface {
	Match(src []rune, from, end int) int
}

// Func is an adapter for using ordinary functions as patterns.
type Func func(src []rune, from, end int) int

// Match calls f(src, from, end).
func (f Func) Match(src []rune, from, end int) int {
	return f(src, from, end)
}

// Char matches a single character accepted by pred.
func Char(pred CharPredicate) Pattern {
	return Func(func(src []rune, from, end int) int {
		if from < end && pred(src[from]) {
			return 1
		}
		return Mismatch
	})
}

// Any matches exactly n arbitrary characters.
func Any(n int) Pattern {
	return Func(func(src []rune, from, end int) int {
		if end-from >= n {
			return n
		}
		return Mismatch
	})
}

// EOF matches the empty suffix only.
var EOF Pattern = Func(func(src []rune, from, end int) int {
	if from >= end {
		return 0
	}
	return Mismatch
})

// String matches s literally.
func String(s string) Pattern {
	str := []rune(s)
	return Func(func(src []rune, from, end int) int {
		if end-from < len(str) {
			return Mismatch
		}
		for i, r := range str {
			if src[from+i] != r {
				return Mismatch
			}
		}
		return len(str)
	})
}

// StringCI matches s, ignoring case. Case folding follows the Unicode
// simple and full folding rules as implemented by x/text/cases.
// Casers are stateful, so every match uses a fresh one.
func StringCI(s string) Pattern {
	folded := cases.Fold().String(s)
	n := utf8.RuneCountInString(s)
	return Func(func(src []rune, from, end int) int {
		if end-from < n {
			return Mismatch
		}
		if cases.Fold().String(string(src[from:from+n])) != folded {
			return Mismatch
		}
		return n
	})
}

// Many matches zero or more characters accepted by pred.
func Many(pred CharPredicate) Pattern {
	return Func(func(src []rune, from, end int) int {
		i := from
		for i < end && pred(src[i]) {
			i++
		}
		return i - from
	})
}

// Many1 matches one or more characters accepted by pred.
func Many1(pred CharPredicate) Pattern {
	return Some(1, -1, pred)
}

// Some matches between min and max characters accepted by pred. A negative
// max denotes an unbounded match.
func Some(min, max int, pred CharPredicate) Pattern {
	if min < 0 || (max >= 0 && min > max) {
		panic("pattern.Some: illegal bounds")
	}
	return Func(func(src []rune, from, end int) int {
		i := from
		for i < end && (max < 0 || i-from < max) && pred(src[i]) {
			i++
		}
		if i-from < min {
			return Mismatch
		}
		return i - from
	})
}

// Repeat matches p exactly n times in sequence.
func Repeat(n int, p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		at := from
		for i := 0; i < n; i++ {
			l := p.Match(src, at, end)
			if l == Mismatch {
				return Mismatch
			}
			at += l
		}
		return at - from
	})
}

// ManyOf matches p zero or more times. A match of length 0 ends the
// repetition.
func ManyOf(p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		at := from
		for {
			l := p.Match(src, at, end)
			if l == Mismatch || l == 0 {
				return at - from
			}
			at += l
		}
	})
}

// Many1Of matches p one or more times.
func Many1Of(p Pattern) Pattern {
	return Seq(p, ManyOf(p))
}

// Optional matches p or the empty string.
func Optional(p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		if l := p.Match(src, from, end); l != Mismatch {
			return l
		}
		return 0
	})
}

// Seq matches the patterns one after the other.
func Seq(ps ...Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		at := from
		for _, p := range ps {
			l := p.Match(src, at, end)
			if l == Mismatch {
				return Mismatch
			}
			at += l
		}
		return at - from
	})
}

// Or returns the match of the first pattern which matches.
func Or(ps ...Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		for _, p := range ps {
			if l := p.Match(src, from, end); l != Mismatch {
				return l
			}
		}
		return Mismatch
	})
}

// Longest returns the longest match of all patterns.
func Longest(ps ...Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		best := Mismatch
		for _, p := range ps {
			if l := p.Match(src, from, end); l > best {
				best = l
			}
		}
		return best
	})
}

// Not matches the empty string if p does not match.
func Not(p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		if p.Match(src, from, end) == Mismatch {
			return 0
		}
		return Mismatch
	})
}

// Peek matches the empty string if p matches, without consuming p's match.
func Peek(p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		if p.Match(src, from, end) == Mismatch {
			return Mismatch
		}
		return 0
	})
}

// Until matches characters up to, but not including, the first match of
// p. It fails if p never matches.
func Until(p Pattern) Pattern {
	return Func(func(src []rune, from, end int) int {
		for i := from; i <= end; i++ {
			if p.Match(src, i, end) != Mismatch {
				return i - from
			}
		}
		return Mismatch
	})
}

// Regex matches a regular expression in Go syntax. The expression is
// anchored at the current position.
func Regex(expr string) Pattern {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	return Func(func(src []rune, from, end int) int {
		rd := &runeReader{src: src[from:end]}
		loc := re.FindReaderIndex(rd)
		if loc == nil {
			return Mismatch
		}
		return runesInBytes(src[from:end], loc[1])
	})
}

// runeReader is an io.RuneReader reading from a rune slice.
type runeReader struct {
	src []rune
	pos int
}

func (rd *runeReader) ReadRune() (rune, int, error) {
	if rd.pos >= len(rd.src) {
		return 0, 0, io.EOF
	}
	r := rd.src[rd.pos]
	rd.pos++
	return r, utf8.RuneLen(r), nil
}

// runesInBytes counts the runes of src occupying the first n bytes of their
// UTF-8 encoding.
func runesInBytes(src []rune, n int) int {
	cnt, bytes := 0, 0
	for bytes < n && cnt < len(src) {
		bytes += utf8.RuneLen(src[cnt])
		cnt++
	}
	return cnt
}
