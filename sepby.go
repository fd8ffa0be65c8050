package parsec

// SepBy1 parses one or more p, separated by sep.
func SepBy1[T any](p Parser[T], sep Consumer) Parser[[]T] {
	return Seq2(p, Many(Right(sep, p)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	}).Named(p.name + " sep-by " + sep.Name())
}

// SepBy parses zero or more p, separated by sep.
func SepBy[T any](p Parser[T], sep Consumer) Parser[[]T] {
	return Plus(SepBy1(p, sep), Return[[]T](nil))
}

// EndBy1 parses one or more p, each followed by sep.
func EndBy1[T any](p Parser[T], sep Consumer) Parser[[]T] {
	return Many1(Left(p, sep))
}

// EndBy parses zero or more p, each followed by sep.
func EndBy[T any](p Parser[T], sep Consumer) Parser[[]T] {
	return Many(Left(p, sep))
}

// endOfList is raised when a separator is not followed by an element.
type endOfList struct{}

// element is either a list element or the end of a list.
type element[T any] struct {
	v  T
	ok bool
}

// SepEndBy1 parses one or more p, separated and optionally ended by sep.
func SepEndBy1[T any](p Parser[T], sep Consumer) Parser[[]T] {
	more := Try(
		Right(sep, Plus(
			Map(p, func(v T) element[T] { return element[T]{v: v, ok: true} }),
			Raise[element[T]](endOfList{}),
		)),
		func(payload interface{}) Parser[element[T]] {
			if _, ok := payload.(endOfList); ok {
				return Return(element[T]{})
			}
			return Raise[element[T]](payload)
		})
	return New(p.name+" sep-end-by "+sep.Name(), func(s *State) ([]T, bool) {
		v, ok := p.apply(s)
		if !ok {
			return nil, false
		}
		items := []T{v}
		for {
			m := s.mark()
			e, ok := more.apply(s)
			if !ok {
				if s.raised() || s.consumed(m) {
					return nil, false
				}
				err := MergeErrors(m.err, s.err)
				s.restore(m)
				s.err = err
				break
			}
			if !e.ok {
				break
			}
			items = append(items, e.v)
		}
		return items, true
	})
}

// SepEndBy parses zero or more p, separated and optionally ended by sep.
func SepEndBy[T any](p Parser[T], sep Consumer) Parser[[]T] {
	return Plus(SepEndBy1(p, sep), Return[[]T](nil))
}
