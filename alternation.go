package parsec

import "strings"

func alternativesName[T any](ps []Parser[T]) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return strings.Join(names, " | ")
}

// Plus tries the alternatives ps in order and returns the result of the
// first one to succeed.
//
// An alternative is abandoned in favour of the next one only if it failed
// having taken fewer logical steps than the lookahead budget (see
// Lookahead), which by default means: without consuming input. The errors
// of all tried alternatives are merged.
func Plus[T any](ps ...Parser[T]) Parser[T] {
	return newLA(alternativesName(ps), func(s *State, la int) (T, bool) {
		var zero T
		m := s.mark()
		acc := m.err
		for _, p := range ps {
			v, ok := p.apply(s)
			if ok {
				return v, true
			}
			if s.raised() {
				return zero, false
			}
			if s.step-m.step >= la {
				s.tracer().Debugf("%s committed to %s after %d steps", s.module, p.name, s.step-m.step)
				return zero, false
			}
			acc = MergeErrors(acc, s.err)
			s.restore(m)
			s.err = acc
		}
		return zero, false
	})
}

// Alt is an alias for Plus.
func Alt[T any](ps ...Parser[T]) Parser[T] { return Plus(ps...) }

// Or tries the alternatives ps in order and returns the result of the first
// one to succeed. Other than Plus, Or backtracks regardless of how much
// input a failing alternative has consumed.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return New(alternativesName(ps), func(s *State) (T, bool) {
		var zero T
		m := s.mark()
		acc := m.err
		for _, p := range ps {
			v, ok := p.apply(s)
			if ok {
				return v, true
			}
			if s.raised() {
				return zero, false
			}
			acc = MergeErrors(acc, s.err)
			s.restore(m)
			s.err = acc
		}
		return zero, false
	})
}

// IfElse runs cond. If it succeeds, the parser yes computes from its
// result is applied. If cond fails within the lookahead budget, no is
// applied instead.
func IfElse[C, T any](cond Parser[C], yes func(C) Parser[T], no Parser[T]) Parser[T] {
	return newLA(cond.name+" ? :", func(s *State, la int) (T, bool) {
		m := s.mark()
		c, ok := cond.apply(s)
		if ok {
			return yes(c).apply(s)
		}
		if s.raised() || s.step-m.step >= la {
			var zero T
			return zero, false
		}
		acc := MergeErrors(m.err, s.err)
		s.restore(m)
		s.err = acc
		return no.apply(s)
	})
}

// Best tries all alternatives ps from the same position. Among the ones
// which succeed it keeps the result of the alternative whose end position
// e is better than the others, i.e. better(e, other) holds. Ties favour the
// earlier alternative.
func Best[T any](better func(at, other int) bool, ps ...Parser[T]) Parser[T] {
	return New(alternativesName(ps), func(s *State) (T, bool) {
		var best T
		var won mark
		found := false
		m := s.mark()
		acc := m.err
		for _, p := range ps {
			v, ok := p.apply(s)
			if ok {
				if !found || better(s.at, won.at) {
					best, won, found = v, s.mark(), true
				}
			} else if s.raised() {
				return best, false
			} else {
				acc = MergeErrors(acc, s.err)
			}
			s.restore(m)
			s.err = acc
		}
		if !found {
			return best, false
		}
		won.err = MergeErrors(won.err, acc)
		s.restore(won)
		return best, true
	})
}

// Longest tries all alternatives and keeps the one which consumes the most
// input.
func Longest[T any](ps ...Parser[T]) Parser[T] {
	return Best(func(at, other int) bool { return at > other }, ps...)
}

// Shortest tries all alternatives and keeps the one which consumes the
// least input.
func Shortest[T any](ps ...Parser[T]) Parser[T] {
	return Best(func(at, other int) bool { return at < other }, ps...)
}
