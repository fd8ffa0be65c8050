package parsec

// Raise fails with a pseudo-exception carrying payload. Pseudo-exceptions
// are not caught by alternation, repetition or optional parsers; they pass
// through until they are caught by Try or reach the top of the parse.
func Raise[T any](payload interface{}) Parser[T] {
	return New("raise", func(s *State) (T, bool) {
		var zero T
		s.err = &ExceptionError{at: s.Index(), Payload: payload}
		return zero, false
	})
}

// Try runs p. If p raises a pseudo-exception, the error present before p
// is restored and the parser catch computes from the exception's payload is
// applied at the position where p stopped. Ordinary failures of p are
// passed through.
func Try[T any](p Parser[T], catch func(payload interface{}) Parser[T]) Parser[T] {
	return newLA("try "+p.name, func(s *State, la int) (T, bool) {
		m := s.mark()
		v, ok := p.applyLA(s, la)
		if ok {
			return v, true
		}
		x, isx := s.err.(*ExceptionError)
		if !isx {
			return v, false
		}
		s.tracer().Debugf("caught exception at %d: %v", x.At(), x.Payload)
		s.err = m.err
		return catch(x.Payload).apply(s)
	})
}
