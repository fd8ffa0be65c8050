package parsec

import "fmt"

// repetition runs p at least min and at most max times (max < 0 meaning: no
// upper bound) and accumulates the results.
//
// The mandatory iterations must all succeed. The optional iterations stop
// when p fails without consuming input; a failure after consuming input
// fails the repetition. An iteration which succeeds without moving the
// cursor ends the repetition, as it would succeed forever.
func repetition[E, R any](name string, min, max int, p Parser[E], acc Accumulatable[E, R]) Parser[R] {
	if min < 0 || (max >= 0 && min > max) {
		panic(fmt.Sprintf("parsec: illegal repetition bounds {%d,%d} for %s", min, max, p.name))
	}
	return New(name, func(s *State) (R, bool) {
		var zero R
		a := acc()
		for i := 0; i < min; i++ {
			v, ok := p.apply(s)
			if !ok {
				return zero, false
			}
			a.Add(v)
		}
		for i := min; max < 0 || i < max; i++ {
			m := s.mark()
			v, ok := p.apply(s)
			if !ok {
				if s.raised() || s.consumed(m) {
					return zero, false
				}
				err := MergeErrors(m.err, s.err)
				s.restore(m)
				s.err = err
				break
			}
			a.Add(v)
			if s.at == m.at {
				s.tracer().Debugf("%s: %s succeeded without progress, stopping", s.module, name)
				break
			}
		}
		return a.Result(), true
	})
}

// ManyAcc runs p zero or more times and accumulates the results.
func ManyAcc[E, R any](p Parser[E], acc Accumulatable[E, R]) Parser[R] {
	return repetition(p.name+"*", 0, -1, p, acc)
}

// Many1Acc runs p one or more times and accumulates the results.
func Many1Acc[E, R any](p Parser[E], acc Accumulatable[E, R]) Parser[R] {
	return repetition(p.name+"+", 1, -1, p, acc)
}

// SomeAcc runs p at least min and at most max times and accumulates the
// results. It panics if min > max or if either bound is negative.
func SomeAcc[E, R any](min, max int, p Parser[E], acc Accumulatable[E, R]) Parser[R] {
	if max < 0 {
		panic(fmt.Sprintf("parsec: illegal repetition bounds {%d,%d} for %s", min, max, p.name))
	}
	return repetition(fmt.Sprintf("%s{%d,%d}", p.name, min, max), min, max, p, acc)
}

// RepeatAcc runs p exactly n times and accumulates the results.
func RepeatAcc[E, R any](n int, p Parser[E], acc Accumulatable[E, R]) Parser[R] {
	return SomeAcc(n, n, p, acc)
}

// Many runs p zero or more times.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ManyAcc(p, SliceOf[T]())
}

// Many1 runs p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Many1Acc(p, SliceOf[T]())
}

// Some runs p at least min and at most max times.
func Some[T any](min, max int, p Parser[T]) Parser[[]T] {
	return SomeAcc(min, max, p, SliceOf[T]())
}

// Repeat runs p exactly n times.
func Repeat[T any](n int, p Parser[T]) Parser[[]T] {
	return RepeatAcc(n, p, SliceOf[T]())
}

// SkipMany runs c zero or more times, dropping the results.
func SkipMany(c Consumer) Parser[Unit] {
	return Discard(ManyAcc(Discard(c), Counting[Unit]()))
}

// SkipMany1 runs c one or more times, dropping the results.
func SkipMany1(c Consumer) Parser[Unit] {
	return Discard(Many1Acc(Discard(c), Counting[Unit]()))
}

// SkipN runs c exactly n times, dropping the results.
func SkipN(n int, c Consumer) Parser[Unit] {
	return Discard(RepeatAcc(n, Discard(c), Counting[Unit]()))
}

// Count runs c zero or more times and returns the number of matches.
func Count(c Consumer) Parser[int] {
	return ManyAcc(Discard(c), Counting[Unit]())
}
