package parsec

// Parser is a named, possibly failing transition of a State, producing a
// result of type T on success.
//
// Parsers are immutable values and may be shared between grammars and
// between concurrent parses.
type Parser[T any] struct {
	name string
	fn   func(s *State, la int) (T, bool)
}

// Consumer is implemented by all parsers, regardless of their result type.
// It is used wherever a parser is applied for its effect on the input only.
type Consumer interface {
	Name() string
	consume(s *State, la int) bool
	applyAny(s *State, la int) (interface{}, bool)
}

// New creates a parser from a function. fn must either succeed or return
// false after recording an error with s.Fail.
//
// fn has to respect the protocol of parsers: on failure it either leaves
// the cursor where it was or where the failing sub-parse stopped.
func New[T any](name string, fn func(s *State) (T, bool)) Parser[T] {
	return Parser[T]{name: name, fn: func(s *State, _ int) (T, bool) {
		return fn(s)
	}}
}

// newLA creates a parser which honors the lookahead budget.
func newLA[T any](name string, fn func(s *State, la int) (T, bool)) Parser[T] {
	return Parser[T]{name: name, fn: fn}
}

// Name returns the name of the parser.
func (p Parser[T]) Name() string { return p.name }

func (p Parser[T]) String() string {
	if p.name == "" {
		return "<parser>"
	}
	return p.name
}

// apply runs p with the default lookahead budget.
func (p Parser[T]) apply(s *State) (T, bool) {
	return p.applyLA(s, DefaultLookahead)
}

// applyLA runs p with lookahead budget la. With fault tracing switched on
// every application is recorded on the frame stack of the state; the frame
// is popped on regular return only, so a panicking collaborator leaves the
// complete chain of active parsers for the trace. Failing applications
// record the chain for the diagnostics of a ParseError.
func (p Parser[T]) applyLA(s *State, la int) (T, bool) {
	if s.frames != nil {
		s.frames.Push(Frame{Module: s.module, Index: s.Index(), Parser: p.name})
		v, ok := p.fn(s, la)
		if !ok {
			s.noteFailure()
		}
		s.frames.Pop()
		return v, ok
	}
	return p.fn(s, la)
}

func (p Parser[T]) consume(s *State, la int) bool {
	_, ok := p.applyLA(s, la)
	return ok
}

func (p Parser[T]) applyAny(s *State, la int) (interface{}, bool) {
	return p.applyLA(s, la)
}

// Named returns p with a new name. Names appear in fault traces.
func (p Parser[T]) Named(name string) Parser[T] {
	return Parser[T]{name: name, fn: p.fn}
}

// Label makes p report "label expected" if it fails without consuming
// input, replacing whatever error p itself has reported.
func (p Parser[T]) Label(label string) Parser[T] {
	return newLA(label, func(s *State, la int) (T, bool) {
		m := s.mark()
		idx := s.Index()
		v, ok := p.applyLA(s, la)
		if ok || s.raised() || s.consumed(m) {
			return v, ok
		}
		s.err = MergeErrors(m.err, &ExpectingError{at: idx, Label: label})
		return v, false
	})
}

// Atomize is a method form of the Atomize combinator.
func (p Parser[T]) Atomize() Parser[T] { return Atomize(p) }

// Lookahead is a method form of the Lookahead combinator.
func (p Parser[T]) Lookahead(n int) Parser[T] { return Lookahead(n, p) }

// Peek is a method form of the Peek combinator.
func (p Parser[T]) Peek() Parser[T] { return Peek(p) }

// Plus returns Plus(p, q).
func (p Parser[T]) Plus(q Parser[T]) Parser[T] { return Plus(p, q) }

// Or returns Or(p, q), which backtracks regardless of the lookahead budget.
func (p Parser[T]) Or(q Parser[T]) Parser[T] { return Or(p, q) }

// Optional returns Optional(p, def).
func (p Parser[T]) Optional(def T) Parser[T] { return Optional(p, def) }

// FollowedBy runs p, then c, and returns the result of p.
func (p Parser[T]) FollowedBy(c Consumer) Parser[T] { return Left(p, c) }

// Parse is a method form of Parse.
func (p Parser[T]) Parse(src string, opts ...Option) (T, error) {
	return Parse(p, src, opts...)
}
