package parsec

// Bind runs p and then the parser f computes from the result of p.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return newLA(p.name+" >>=", func(s *State, la int) (U, bool) {
		v, ok := p.applyLA(s, la)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v).apply(s)
	})
}

// Map transforms the result of p by f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return newLA(p.name, func(s *State, la int) (U, bool) {
		v, ok := p.applyLA(s, la)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	})
}

// MapErr transforms the result of p by f. If f returns an error, the parse
// fails with the error's message at the position where p started.
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return newLA(p.name, func(s *State, la int) (U, bool) {
		idx := s.Index()
		v, ok := p.applyLA(s, la)
		if !ok {
			var zero U
			return zero, false
		}
		u, err := f(v)
		if err != nil {
			return u, s.Fail(&RawError{at: idx, Msg: err.Error()})
		}
		return u, true
	})
}

// Const runs c and returns v instead of the result of c.
func Const[T any](c Consumer, v T) Parser[T] {
	return newLA(c.Name(), func(s *State, la int) (T, bool) {
		if !c.consume(s, la) {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// Discard runs c and drops its result.
func Discard(c Consumer) Parser[Unit] {
	return Const(c, Unit{})
}

// Right runs c, then q, and returns the result of q.
func Right[U any](c Consumer, q Parser[U]) Parser[U] {
	return newLA(c.Name()+" >> "+q.name, func(s *State, la int) (U, bool) {
		if !c.consume(s, la) {
			var zero U
			return zero, false
		}
		return q.apply(s)
	})
}

// Then is an alias for Right.
func Then[U any](c Consumer, q Parser[U]) Parser[U] { return Right(c, q) }

// Left runs p, then c, and returns the result of p.
func Left[T any](p Parser[T], c Consumer) Parser[T] {
	return newLA(p.name+" << "+c.Name(), func(s *State, la int) (T, bool) {
		v, ok := p.applyLA(s, la)
		if !ok {
			return v, false
		}
		if !c.consume(s, DefaultLookahead) {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// Skip is an alias for Left.
func Skip[T any](p Parser[T], c Consumer) Parser[T] { return Left(p, c) }

// Between runs open, p and close, and returns the result of p.
func Between[T any](open Consumer, p Parser[T], close Consumer) Parser[T] {
	return Left(Right(open, p), close)
}

// Tuple is the result of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair runs p, then q, and returns both results.
func Pair[A, B any](p Parser[A], q Parser[B]) Parser[Tuple[A, B]] {
	return Seq2(p, q, func(a A, b B) Tuple[A, B] {
		return Tuple[A, B]{First: a, Second: b}
	})
}

// Seq2 runs p1 and p2 and combines their results by f.
func Seq2[A, B, R any](p1 Parser[A], p2 Parser[B], f func(A, B) R) Parser[R] {
	return newLA(p1.name, func(s *State, la int) (R, bool) {
		var zero R
		a, ok := p1.applyLA(s, la)
		if !ok {
			return zero, false
		}
		b, ok := p2.apply(s)
		if !ok {
			return zero, false
		}
		return f(a, b), true
	})
}

// Seq3 runs p1, p2 and p3 and combines their results by f.
func Seq3[A, B, C, R any](p1 Parser[A], p2 Parser[B], p3 Parser[C],
	f func(A, B, C) R) Parser[R] {
	//
	return newLA(p1.name, func(s *State, la int) (R, bool) {
		var zero R
		a, ok := p1.applyLA(s, la)
		if !ok {
			return zero, false
		}
		b, ok := p2.apply(s)
		if !ok {
			return zero, false
		}
		c, ok := p3.apply(s)
		if !ok {
			return zero, false
		}
		return f(a, b, c), true
	})
}

// Seq4 runs four parsers in order and combines their results by f.
func Seq4[A, B, C, D, R any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D],
	f func(A, B, C, D) R) Parser[R] {
	//
	return newLA(p1.name, func(s *State, la int) (R, bool) {
		var zero R
		a, ok := p1.applyLA(s, la)
		if !ok {
			return zero, false
		}
		b, ok := p2.apply(s)
		if !ok {
			return zero, false
		}
		c, ok := p3.apply(s)
		if !ok {
			return zero, false
		}
		d, ok := p4.apply(s)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d), true
	})
}

// Seq5 runs five parsers in order and combines their results by f.
func Seq5[A, B, C, D, E, R any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D],
	p5 Parser[E], f func(A, B, C, D, E) R) Parser[R] {
	//
	return newLA(p1.name, func(s *State, la int) (R, bool) {
		var zero R
		a, ok := p1.applyLA(s, la)
		if !ok {
			return zero, false
		}
		b, ok := p2.apply(s)
		if !ok {
			return zero, false
		}
		c, ok := p3.apply(s)
		if !ok {
			return zero, false
		}
		d, ok := p4.apply(s)
		if !ok {
			return zero, false
		}
		e, ok := p5.apply(s)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d, e), true
	})
}

// Sequence runs all parsers in order and returns the result of the last
// one. With no parsers it succeeds with nil.
func Sequence(cs ...Consumer) Parser[interface{}] {
	name := "sequence"
	if len(cs) > 0 {
		name = cs[0].Name()
	}
	return newLA(name, func(s *State, la int) (interface{}, bool) {
		var v interface{}
		for i, c := range cs {
			budget := DefaultLookahead
			if i == 0 {
				budget = la
			}
			var ok bool
			if v, ok = c.applyAny(s, budget); !ok {
				return nil, false
			}
		}
		return v, true
	})
}
