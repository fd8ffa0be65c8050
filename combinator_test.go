package parsec

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/parsec/internal/tracing"
	"github.com/npillmayer/parsec/pattern"
)

var digit = Satisfy("digit", pattern.IsDigit)

var integer = Map(Many1Acc(digit, RunesOf()), func(s string) int {
	n, _ := strconv.Atoi(s)
	return n
})

func TestDigits(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	digits := Many1Acc(digit, RunesOf())
	s := NewState("123")
	r := Run(digits, s)
	if !r.OK() || r.Value != "123" {
		t.Fatalf("expected 123, got %v (%v)", r.Value, r.Status)
	}
	if s.Step() != 3 {
		t.Errorf("expected 3 steps, got %d", s.Step())
	}
	_, err := Parse(digits, "")
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected parse error, got %v", err)
	}
	if perr.Line != 1 || perr.Column != 1 {
		t.Errorf("expected error at 1:1, got %d:%d", perr.Line, perr.Column)
	}
	if perr.Message != "digit expected, EOF encountered." {
		t.Errorf("unexpected message %q", perr.Message)
	}
}

func TestPlusRestoresState(t *testing.T) {
	var at, step int
	var user interface{}
	dirty := New("dirty", func(s *State) (int, bool) {
		s.SetUserState("dirty")
		return 0, s.Fail(NewExpectingError(s.Index(), "dirty"))
	})
	observe := New("observe", func(s *State) (int, bool) {
		at, step, user = s.At(), s.Step(), s.UserState()
		return 1, true
	})
	s := NewState("x", UserState("clean"))
	r := Run(Plus(dirty, observe), s)
	if !r.OK() || r.Value != 1 {
		t.Fatalf("expected second alternative to succeed")
	}
	if at != 0 || step != 0 || user != "clean" {
		t.Errorf("second alternative saw at=%d step=%d user=%v", at, step, user)
	}
}

func TestPlusHonorsLookahead(t *testing.T) {
	ab := Right(IsChar('a'), IsChar('b'))
	ac := Right(IsChar('a'), IsChar('c'))
	if r := Run(Plus(ab, ac), NewState("ac")); r.OK() {
		t.Errorf("expected alternation to commit after one step")
	}
	if r := Run(Lookahead(2, Plus(ab, ac)), NewState("ac")); !r.OK() || r.Value != 'c' {
		t.Errorf("expected lookahead 2 to try second alternative, got %v", r.Status)
	}
	if r := Run(Or(ab, ac), NewState("ac")); !r.OK() || r.Value != 'c' {
		t.Errorf("expected Or to try second alternative, got %v", r.Status)
	}
}

func TestAtomize(t *testing.T) {
	abc := Right(IsChar('a'), Right(IsChar('b'), IsChar('c')))
	s := NewState("abx")
	if r := Run(Atomize(abc), s); r.OK() {
		t.Fatalf("expected abc to fail on abx")
	}
	if s.At() != 0 || s.Step() != 0 {
		t.Errorf("expected atomize to restore position, have at=%d step=%d", s.At(), s.Step())
	}
	s = NewState("abc")
	if r := Run(Atomize(abc), s); !r.OK() || s.Step() != 1 || s.At() != 3 {
		t.Errorf("expected one step over 3 characters, have at=%d step=%d", s.At(), s.Step())
	}
	alt := Plus(Source(Atomize(abc)), Source(Right(IsChar('a'), Many(AnyChar()))))
	if v, err := Parse(alt, "abx"); err != nil || v != "abx" {
		t.Errorf("expected second alternative after atomized failure, got %q, %v", v, err)
	}
}

func TestManyTerminatesOnEmptyMatch(t *testing.T) {
	v, err := Parse(Many(Return(7)), "")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{7}, v); diff != "" {
		t.Errorf("many(return) mismatch (-want +got):\n%s", diff)
	}
}

func TestRepetitionBounds(t *testing.T) {
	p := Some(2, 3, digit)
	if v, err := Parse(Left(p, Many(AnyChar())), "12345"); err != nil || string(v) != "123" {
		t.Errorf("expected 123, got %q, %v", string(v), err)
	}
	if _, err := Parse(p, "1"); err == nil {
		t.Errorf("expected failure for a single digit")
	}
	if v, err := Parse(Repeat(2, digit), "12"); err != nil || string(v) != "12" {
		t.Errorf("expected 12, got %q, %v", string(v), err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected bounds 3 > 2 to be rejected")
		}
	}()
	Some(3, 2, digit)
}

func TestLongestShortest(t *testing.T) {
	a := Const(IsString("ab"), "a")
	b := Const(IsString("ab"), "b")
	if v, err := Parse(Longest(a, b), "ab"); err != nil || v != "a" {
		t.Errorf("longest: expected tie to favour a, got %q, %v", v, err)
	}
	if v, err := Parse(Shortest(a, b), "ab"); err != nil || v != "a" {
		t.Errorf("shortest: expected tie to favour a, got %q, %v", v, err)
	}
	short, long := IsString("a"), IsString("ab")
	if v, err := Parse(Longest(short, long), "ab"); err != nil || v != "ab" {
		t.Errorf("expected longest match ab, got %q, %v", v, err)
	}
	r := Run(Shortest(long, short), NewState("ab"))
	if !r.OK() || r.Value != "a" {
		t.Errorf("expected shortest match a, got %q", r.Value)
	}
}

func TestLabel(t *testing.T) {
	greeting := IsString("hello").Label("greeting")
	_, err := Parse(greeting, "bye")
	if err == nil || err.(*ParseError).Message != "greeting expected, 'b' encountered." {
		t.Errorf("unexpected error %v", err)
	}
}

func TestProbes(t *testing.T) {
	s := NewState("a")
	if r := Run(Peek(IsChar('a')), s); !r.OK() || s.At() != 0 {
		t.Errorf("expected peek to succeed without consuming")
	}
	if r := Run(Not(IsChar('a'), "'a'"), NewState("b")); !r.OK() {
		t.Errorf("expected not to succeed")
	}
	_, err := Parse(Right(Not(IsChar('a'), "'a'"), AnyChar()), "a")
	if err == nil || err.(*ParseError).Message != "'a' unexpected." {
		t.Errorf("unexpected error %v", err)
	}
	if v, err := Parse(Left(Optional(IsChar('a'), 'z'), AnyChar()), "b"); err != nil || v != 'z' {
		t.Errorf("expected default z, got %q, %v", v, err)
	}
}

func TestSeparatedLists(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	comma := IsChar(',')
	v, err := Parse(SepBy1(integer, comma), "1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, v); diff != "" {
		t.Errorf("sepBy1 mismatch (-want +got):\n%s", diff)
	}
	if _, err = Parse(SepBy1(integer, comma), "1,2,"); err == nil {
		t.Errorf("expected sepBy1 to reject trailing separator")
	}
	v, err = Parse(SepEndBy1(integer, comma), "1,2,")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, v); diff != "" {
		t.Errorf("sepEndBy1 mismatch (-want +got):\n%s", diff)
	}
	v, err = Parse(SepEndBy1(integer, comma), "1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, v); diff != "" {
		t.Errorf("sepEndBy1 mismatch (-want +got):\n%s", diff)
	}
	if v, err = Parse(SepBy(integer, comma), ""); err != nil || len(v) != 0 {
		t.Errorf("expected empty list, got %v, %v", v, err)
	}
	v, err = Parse(EndBy(integer, IsChar(';')), "1;2;")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, v); diff != "" {
		t.Errorf("endBy mismatch (-want +got):\n%s", diff)
	}
}

func TestExceptions(t *testing.T) {
	r := Run(Plus(Raise[int]("boom"), Return(1)), NewState(""))
	if r.Status != Raised || r.Payload != "boom" {
		t.Errorf("expected exception to pass alternation, got %v", r.Status)
	}
	caught := Try(Raise[int]("boom"), func(payload interface{}) Parser[int] {
		return Return(42)
	})
	if v, err := Parse(caught, ""); err != nil || v != 42 {
		t.Errorf("expected 42, got %d, %v", v, err)
	}
	_, err := Parse(Raise[int]("boom"), "")
	if err == nil || err.(*ParseError).Message != "uncaught exception: boom." {
		t.Errorf("unexpected error %v", err)
	}
}

func TestUserState(t *testing.T) {
	inc := UpdateUserState(func(u interface{}) interface{} { return u.(int) + 1 })
	p := Right(SkipMany(Right(IsChar('a'), inc)), GetUserState())
	v, err := Parse(p, "aaa", UserState(0))
	if err != nil || v != 3 {
		t.Errorf("expected user state 3, got %v, %v", v, err)
	}
}

func TestRecursiveGrammar(t *testing.T) {
	// nested parentheses, counting the depth
	expr := NewRef[int]("expr")
	expr.Set(Plus(
		Map(Between(IsChar('('), expr.Parser(), IsChar(')')), func(n int) int { return n + 1 }),
		Return(0),
	))
	if v, err := Parse(expr.Parser(), "((()))"); err != nil || v != 3 {
		t.Errorf("expected depth 3, got %d, %v", v, err)
	}
}

func TestExpressionTable(t *testing.T) {
	op := func(c rune, f func(int, int) int) Parser[func(int, int) int] {
		return Const(IsChar(c), f)
	}
	neg := Const(IsChar('-'), func(n int) int { return -n })
	table := NewOperatorTable[int]().
		Infixl(1, op('+', func(a, b int) int { return a + b })).
		Infixl(1, op('-', func(a, b int) int { return a - b })).
		Infixl(2, op('*', func(a, b int) int { return a * b })).
		Infixr(3, op('^', func(a, b int) int {
			r := 1
			for i := 0; i < b; i++ {
				r *= a
			}
			return r
		})).
		Prefix(4, neg)
	expr := table.Build(integer)
	tests := []struct {
		in  string
		out int
	}{
		{"1+2*3", 7},
		{"10-3-2", 5},
		{"2^3^2", 512},
		{"-2*3", -6},
		{"2*3+4*5", 26},
	}
	for _, test := range tests {
		v, err := Parse(expr, test.in)
		if err != nil {
			t.Errorf("%s: %v", test.in, err)
		} else if v != test.out {
			t.Errorf("%s: expected %d, got %d", test.in, test.out, v)
		}
	}
}

func TestEmptyMatchTakesNoStep(t *testing.T) {
	ws := IsPattern("whitespace", pattern.Many(pattern.IsWhitespace))
	s := NewState("b")
	if r := Run(ws, s); !r.OK() || s.At() != 0 || s.Step() != 0 {
		t.Fatalf("expected empty match without a step, have at=%d step=%d", s.At(), s.Step())
	}
	if v, err := Parse(Plus(Right(ws, IsChar('a')), IsChar('b')), "b"); err != nil || v != 'b' {
		t.Errorf("plus: expected b, got %q, %v", v, err)
	}
	v, err := Parse(Left(Many(Right(ws, IsChar('x'))), AnyChar()), "y")
	if err != nil || len(v) != 0 {
		t.Errorf("many: expected no iterations, got %q, %v", string(v), err)
	}
	if v, err := Parse(Left(Optional(Right(ws, IsChar('a')), 'z'), AnyChar()), "b"); err != nil || v != 'z' {
		t.Errorf("optional: expected default z, got %q, %v", v, err)
	}
	_, err = Parse(Right(ws, IsChar('a')).Label("letter a"), "b")
	if err == nil || err.(*ParseError).Message != "letter a expected, 'b' encountered." {
		t.Errorf("label: unexpected error %v", err)
	}
}

func TestLookaheadAppliesToOneLevel(t *testing.T) {
	b := IsChar('b')
	inner := Plus(Right(b, IsChar('c')), Right(b, IsChar('d')))
	if r := Run(inner, NewState("bd")); r.OK() {
		t.Errorf("expected inner alternation to commit after one step")
	}
	outer := Lookahead(2, Plus(inner, Const(IsString("bd"), 'F')))
	if v, err := Parse(outer, "bd"); err != nil || v != 'F' {
		t.Errorf("expected the outer fallback F, got %q, %v", v, err)
	}
}

func TestProbesRestoreAfterConsumption(t *testing.T) {
	dirty := Right(SetUserState("dirty"), Right(IsChar('a'), IsChar('b')))
	s := NewState("ac", UserState("clean"))
	if r := Run(Peek(dirty), s); r.OK() {
		t.Fatalf("expected peek of ab to fail on ac")
	}
	if s.At() != 0 || s.Step() != 0 || s.UserState() != "clean" {
		t.Errorf("peek: have at=%d step=%d user=%v", s.At(), s.Step(), s.UserState())
	}
	s = NewState("ac", UserState("clean"))
	if r := Run(Not(dirty, "ab"), s); !r.OK() {
		t.Fatalf("expected not ab to succeed on ac")
	}
	if s.At() != 0 || s.Step() != 0 || s.UserState() != "clean" {
		t.Errorf("not: have at=%d step=%d user=%v", s.At(), s.Step(), s.UserState())
	}
}

func TestOrMethodIgnoresBudget(t *testing.T) {
	ab := Right(IsChar('a'), IsChar('b'))
	ac := Right(IsChar('a'), IsChar('c'))
	if v, err := Parse(ab.Or(ac), "ac"); err != nil || v != 'c' {
		t.Errorf("expected or method to backtrack, got %q, %v", v, err)
	}
	if _, err := Parse(ab.Plus(ac), "ac"); err == nil {
		t.Errorf("expected plus method to commit after one step")
	}
}
