package pattern

import (
	"testing"
)

func match(p Pattern, s string) int {
	src := []rune(s)
	return p.Match(src, 0, len(src))
}

func TestPredicates(t *testing.T) {
	vowels := Among("aeiouäöü")
	for _, r := range "aeiouü" {
		if !vowels(r) {
			t.Errorf("expected %q to be among vowels", r)
		}
	}
	if vowels('x') || !NotAmong("xyz")('a') {
		t.Errorf("Among/NotAmong mismatched")
	}
	if !Range('a', 'f')('c') || Range('a', 'f')('g') {
		t.Errorf("Range mismatched")
	}
	if !AllOf(IsLetter, IsLowerCase)('q') || AllOf(IsLetter, IsLowerCase)('Q') {
		t.Errorf("AllOf mismatched")
	}
	if !AnyOf(IsDigit, IsChar('_'))('_') || !IsHexDigit('F') || IsHexDigit('g') {
		t.Errorf("AnyOf/IsHexDigit mismatched")
	}
	if Negate(IsDigit)('1') || !Negate(IsDigit)('x') {
		t.Errorf("Negate mismatched")
	}
}

func TestSimplePatterns(t *testing.T) {
	cases := []struct {
		name  string
		p     Pattern
		input string
		n     int
	}{
		{"char", Char(IsDigit), "1a", 1},
		{"char-mismatch", Char(IsDigit), "a1", Mismatch},
		{"string", String("let"), "let x", 3},
		{"string-short", String("let"), "le", Mismatch},
		{"string-ci", StringCI("SELECT"), "select *", 6},
		{"many", Many(IsDigit), "123abc", 3},
		{"many-empty", Many(IsDigit), "abc", 0},
		{"many1", Many1(IsDigit), "abc", Mismatch},
		{"some", Some(2, 3, IsDigit), "12345", 3},
		{"some-few", Some(2, 3, IsDigit), "1x", Mismatch},
		{"repeat", Repeat(2, String("ab")), "ababab", 4},
		{"seq", Seq(Char(IsLetter), Many(IsAlphaNumeric)), "x1_y z", 4},
		{"or", Or(String("<="), String("<")), "<=", 2},
		{"longest", Longest(String("<"), String("<=")), "<=", 2},
		{"optional", Optional(String("-")), "5", 0},
		{"not", Not(Char(IsDigit)), "a", 0},
		{"peek", Peek(Char(IsDigit)), "1", 0},
		{"until", Until(String("*/")), "abc */", 4},
		{"many-of", ManyOf(String("ab")), "ababx", 4},
		{"eof", EOF, "", 0},
		{"any", Any(2), "x", Mismatch},
		{"regex", Regex(`[0-9]+\.[0-9]*`), "3.14 rest", 4},
		{"regex-unicode", Regex(`ä+`), "äääb", 3},
		{"regex-mismatch", Regex(`[0-9]+`), "x12", Mismatch},
	}
	for _, c := range cases {
		if n := match(c.p, c.input); n != c.n {
			t.Errorf("%s: expected match length %d for %q, have %d", c.name, c.n, c.input, n)
		}
	}
}

func TestBoundedMatch(t *testing.T) {
	src := []rune("123456")
	if n := Many(IsDigit).Match(src, 2, 4); n != 2 {
		t.Errorf("expected match to stop at end bound, matched %d", n)
	}
}
