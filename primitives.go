package parsec

import (
	"fmt"
	"sync"
)

// Return succeeds with v without consuming input.
func Return[T any](v T) Parser[T] {
	return New("return", func(s *State) (T, bool) {
		return v, true
	})
}

// Succeed succeeds with Unit without consuming input.
func Succeed() Parser[Unit] {
	return Return(Unit{})
}

// Fail fails with a free-form message without consuming input.
func Fail[T any](msg string) Parser[T] {
	return New("fail", func(s *State) (T, bool) {
		var zero T
		return zero, s.Fail(&RawError{at: s.Index(), Msg: msg})
	})
}

// Failf is like Fail with a formatted message.
func Failf[T any](format string, args ...interface{}) Parser[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// Expect fails with "label expected".
func Expect[T any](label string) Parser[T] {
	return New(label, func(s *State) (T, bool) {
		var zero T
		return zero, s.expecting(label)
	})
}

// Unexpected fails with "what unexpected".
func Unexpected[T any](what string) Parser[T] {
	return New("unexpected "+what, func(s *State) (T, bool) {
		var zero T
		return zero, s.Fail(&UnexpectedError{at: s.Index(), What: what})
	})
}

// Never always fails, reporting the input found at the cursor as
// unexpected.
func Never[T any]() Parser[T] {
	return New("never", func(s *State) (T, bool) {
		var zero T
		return zero, s.Fail(&UnexpectedError{at: s.Index(), What: s.encountered(s.Index())})
	})
}

// Action runs f and succeeds. Actions are executed in document order,
// but are not undone on backtracking.
func Action(name string, f func()) Parser[Unit] {
	return New(name, func(s *State) (Unit, bool) {
		f()
		return Unit{}, true
	})
}

// GetUserState returns the user state.
func GetUserState() Parser[interface{}] {
	return New("user state", func(s *State) (interface{}, bool) {
		return s.user, true
	})
}

// SetUserState replaces the user state.
func SetUserState(u interface{}) Parser[Unit] {
	return New("set user state", func(s *State) (Unit, bool) {
		s.user = u
		return Unit{}, true
	})
}

// UpdateUserState replaces the user state by f(user state).
func UpdateUserState(f func(interface{}) interface{}) Parser[Unit] {
	return New("update user state", func(s *State) (Unit, bool) {
		s.user = f(s.user)
		return Unit{}, true
	})
}

// GetIndex returns the diagnostic index of the cursor.
func GetIndex() Parser[int] {
	return New("index", func(s *State) (int, bool) {
		return s.Index(), true
	})
}

// GetAt returns the cursor position.
func GetAt() Parser[int] {
	return New("at", func(s *State) (int, bool) {
		return s.at, true
	})
}

// GetStep returns the number of logical steps taken so far.
func GetStep() Parser[int] {
	return New("step", func(s *State) (int, bool) {
		return s.step, true
	})
}

// Lazy defers the construction of a parser until it is first applied.
// Use it for recursive grammars.
func Lazy[T any](name string, f func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return newLA(name, func(s *State, la int) (T, bool) {
		once.Do(func() { p = f() })
		return p.applyLA(s, la)
	})
}

// Ref is a forward declaration of a parser, to be set later.
//
//	expr := parsec.NewRef[Term]("expr")
//	atom := parsec.Plus(variable, parsec.Between(lparen, expr.Parser(), rparen))
//	expr.Set(...)
type Ref[T any] struct {
	name string
	p    *Parser[T]
}

// NewRef creates an unset forward declaration.
func NewRef[T any](name string) *Ref[T] {
	return &Ref[T]{name: name}
}

// Set binds the forward declaration to p.
func (r *Ref[T]) Set(p Parser[T]) {
	r.p = &p
}

// Parser returns a parser which delegates to the parser r has been set to.
// Applying it before Set panics.
func (r *Ref[T]) Parser() Parser[T] {
	return newLA(r.name, func(s *State, la int) (T, bool) {
		if r.p == nil {
			panic(fmt.Sprintf("parsec: reference %q used before being set", r.name))
		}
		return r.p.applyLA(s, la)
	})
}
