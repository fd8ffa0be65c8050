package parsec

// Peek runs p without consuming input. If p succeeds, its result is
// returned.
func Peek[T any](p Parser[T]) Parser[T] {
	return New("peek "+p.name, func(s *State) (T, bool) {
		m := s.mark()
		v, ok := p.apply(s)
		if ok {
			s.restore(m)
			return v, true
		}
		err := s.err
		s.restore(m)
		s.err = err
		return v, false
	})
}

// Not succeeds without consuming input if p fails, and fails with
// "label unexpected" if p succeeds.
func Not(c Consumer, label string) Parser[Unit] {
	return New("not "+c.Name(), func(s *State) (Unit, bool) {
		m := s.mark()
		idx := s.Index()
		if c.consume(s, DefaultLookahead) {
			s.restore(m)
			return Unit{}, s.Fail(&UnexpectedError{at: idx, What: label})
		}
		if s.raised() {
			return Unit{}, false
		}
		s.restore(m)
		return Unit{}, true
	})
}

// NotFollowedBy runs p and then makes sure c does not match at the
// position behind p.
func NotFollowedBy[T any](p Parser[T], c Consumer, label string) Parser[T] {
	return Left(p, Not(c, label))
}

// Atomize makes p count as a single logical step. If p fails, the cursor is
// restored to where p started, no matter how much input p has consumed.
func Atomize[T any](p Parser[T]) Parser[T] {
	return newLA(p.name, func(s *State, la int) (T, bool) {
		m := s.mark()
		v, ok := p.applyLA(s, la)
		if ok {
			if s.step > m.step {
				s.step = m.step + 1
			}
			return v, true
		}
		s.at, s.step = m.at, m.step
		return v, false
	})
}

// Lookahead grants p a lookahead budget of n logical steps. The budget
// applies to the alternation p is made of, and not to alternations nested
// deeper.
func Lookahead[T any](n int, p Parser[T]) Parser[T] {
	return New(p.name, func(s *State) (T, bool) {
		return p.applyLA(s, n)
	})
}

// Optional runs p. If p fails without consuming input, Optional succeeds
// with def.
func Optional[T any](p Parser[T], def T) Parser[T] {
	return newLA(p.name+"?", func(s *State, la int) (T, bool) {
		m := s.mark()
		v, ok := p.applyLA(s, la)
		if ok {
			return v, true
		}
		if s.raised() || s.step-m.step >= la {
			return v, false
		}
		err := MergeErrors(m.err, s.err)
		s.restore(m)
		s.err = err
		return def, true
	})
}

// Maybe runs p and reports whether it has matched. If p fails without
// consuming input, Maybe succeeds with false.
func Maybe(c Consumer) Parser[bool] {
	return Optional(Const(c, true), false)
}
